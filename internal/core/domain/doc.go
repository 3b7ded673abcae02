// Package domain defines the core business entities for the Drive to
// HubSpot transfer workflow.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - DriveFile: A file snapshot from the source folder
//   - SharingGrant: An access-control entry naming a recipient email
//   - Contact: A resolved CRM contact
//   - TransferReport: Aggregated per-file/per-recipient run outcomes
//
// # Import Rules
//
//   - Can Import: Standard library and github.com/google/uuid only
//   - Cannot Import: Any other internal/ package
package domain
