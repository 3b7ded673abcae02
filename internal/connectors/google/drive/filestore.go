// Package drive implements the FileStore port on the Google Drive v3 API.
package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/saran-io/gdrive-hub-integration/internal/connectors/google"
	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

// MimeTypeFolder marks folder entries, which are skipped when listing.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// DefaultPageSize is the listing page size when none is configured.
const DefaultPageSize = 100

// Ensure FileStore implements the port.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore lists, downloads and inspects files via the Drive API.
type FileStore struct {
	svc      *drive.Service
	limiter  *google.RateLimiter
	pageSize int64
}

// NewFileStore creates a FileStore over an authenticated Drive service.
func NewFileStore(svc *drive.Service, limiter *google.RateLimiter, pageSize int64) *FileStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &FileStore{
		svc:      svc,
		limiter:  limiter,
		pageSize: pageSize,
	}
}

// ListFolderFiles returns every non-trashed, non-folder file whose
// parent is folderID. The listing is paginated to completion; an empty
// folder yields an empty slice.
func (s *FileStore) ListFolderFiles(ctx context.Context, folderID string) ([]domain.DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)

	var files []domain.DriveFile
	pageToken := ""
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		call := s.svc.Files.List().
			Q(query).
			PageSize(s.pageSize).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list folder %s: %w", folderID, google.WrapError(err))
		}

		for _, f := range page.Files {
			if f.MimeType == MimeTypeFolder {
				continue
			}
			files = append(files, domain.DriveFile{
				ID:       f.Id,
				Name:     f.Name,
				MIMEType: f.MimeType,
			})
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	logger.Debug("listed %d files in folder %s", len(files), folderID)
	return files, nil
}

// DownloadContent fetches file bytes. Native editor documents are
// exported as PDF since they have no raw binary form; everything else
// is downloaded directly.
func (s *FileStore) DownloadContent(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var (
		resp *http.Response
		err  error
	)
	if domain.ExportsAsPDF(mimeType) {
		resp, err = s.svc.Files.Export(fileID, domain.MimeTypePDF).Context(ctx).Download()
	} else {
		resp, err = s.svc.Files.Get(fileID).Context(ctx).Download()
	}
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, google.WrapError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file %s content: %w", fileID, err)
	}

	return data, nil
}

// ListSharedEmails lists the file's sharing grants and extracts the
// distinct non-empty email addresses, in first-seen order. Grants for
// domains or link sharing carry no address and are ignored.
func (s *FileStore) ListSharedEmails(ctx context.Context, fileID string) ([]string, error) {
	var emails []string
	seen := make(map[string]bool)

	pageToken := ""
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		call := s.svc.Permissions.List(fileID).
			Fields("nextPageToken, permissions(emailAddress)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list permissions for %s: %w", fileID, google.WrapError(err))
		}

		for _, p := range page.Permissions {
			addr := p.EmailAddress
			if addr == "" {
				continue
			}
			key := strings.ToLower(addr)
			if seen[key] {
				continue
			}
			seen[key] = true
			emails = append(emails, addr)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return emails, nil
}
