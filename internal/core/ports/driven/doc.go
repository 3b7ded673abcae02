// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// The transfer service depends on these interfaces, and the connector and
// adapter packages implement them:
//
//   - TokenProvider: Supplies valid access tokens (auth adapters)
//   - FileStore: Lists, downloads and inspects source files (Drive connector)
//   - ContactDirectory: Resolves emails to CRM contacts (HubSpot connector)
//   - AttachmentUploader: Uploads files and creates engagements (HubSpot connector)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
