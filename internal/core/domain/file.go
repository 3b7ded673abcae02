package domain

// Google Workspace MIME types that have no raw binary form and must be
// exported before download.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
)

// MimeTypePDF is the export format for Google Workspace files.
const MimeTypePDF = "application/pdf"

// DriveFile is an immutable snapshot of a file in the source folder,
// fetched once per run. Identity is the ID.
type DriveFile struct {
	// ID is the Drive file identifier.
	ID string

	// Name is the display name, reused as the upload file name.
	Name string

	// MIMEType is the Drive-reported content type.
	MIMEType string
}

// IsWorkspaceDoc reports whether the file is a native editor document
// (Docs, Sheets or Slides) that downloads via PDF export.
func (f DriveFile) IsWorkspaceDoc() bool {
	return ExportsAsPDF(f.MIMEType)
}

// SharingGrant is an access-control entry on a file. Grants without an
// email address (domain or anyone links) carry an empty EmailAddress.
type SharingGrant struct {
	EmailAddress string
}

// ExportsAsPDF reports whether a MIME type belongs to the fixed set of
// native editor types that are exported as PDF.
func ExportsAsPDF(mimeType string) bool {
	switch mimeType {
	case MimeTypeGoogleDoc, MimeTypeGoogleSheet, MimeTypeGoogleSlides:
		return true
	default:
		return false
	}
}

// EffectiveContentType returns the content type the file carries after
// download: application/pdf for exported Workspace files, otherwise the
// original MIME type.
func EffectiveContentType(mimeType string) string {
	if ExportsAsPDF(mimeType) {
		return MimeTypePDF
	}
	return mimeType
}
