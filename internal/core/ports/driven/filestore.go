package driven

import (
	"context"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

// FileStore lists and fetches files from the source folder.
// Implemented by the Google Drive connector.
type FileStore interface {
	// ListFolderFiles returns every non-trashed file whose parent is
	// folderID. An empty folder yields an empty slice and nil error.
	ListFolderFiles(ctx context.Context, folderID string) ([]domain.DriveFile, error)

	// DownloadContent fetches file bytes. Native editor documents
	// (Docs, Sheets, Slides) are exported as PDF; everything else is
	// downloaded raw. Errors here are soft per-file failures upstream.
	DownloadContent(ctx context.Context, fileID, mimeType string) ([]byte, error)

	// ListSharedEmails returns the distinct non-empty email addresses
	// from the file's sharing grants, in first-seen order.
	ListSharedEmails(ctx context.Context, fileID string) ([]string, error)
}
