// Package hubspot implements the ContactDirectory and AttachmentUploader
// ports on the HubSpot REST API.
//
// Three endpoints are used:
//   - POST /crm/v3/objects/contacts/search: exact-match contact lookup by email
//   - POST /filemanager/api/v3/files/upload: multipart file upload
//   - POST /engagements/v1/engagements: NOTE engagement creation
//
// Authentication is a private-app bearer token supplied through the
// TokenProvider port. All calls share one client-side rate limiter.
package hubspot
