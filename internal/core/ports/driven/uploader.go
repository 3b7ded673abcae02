package driven

import "context"

// AttachmentUploader uploads binary content to CRM file storage and
// records it on a contact's timeline. Implemented by the HubSpot connector.
type AttachmentUploader interface {
	// UploadFile uploads content to private storage under the configured
	// folder path with duplicate validation disabled, returning the
	// storage file ID.
	UploadFile(ctx context.Context, name string, content []byte, mimeType string) (string, error)

	// CreateEngagement creates an active NOTE engagement timestamped at
	// call time, attached to fileID and associated with contactID.
	// Returns the engagement ID.
	CreateEngagement(ctx context.Context, fileID, contactID, noteBody string) (string, error)

	// AttachFileToContact composes UploadFile and CreateEngagement.
	// A failure in either step is a soft per-recipient failure upstream.
	AttachFileToContact(ctx context.Context, name string, content []byte, mimeType, contactID string) error
}
