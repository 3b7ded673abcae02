package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driving"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

// DefaultMaxConcurrent bounds the per-file fan-out when no limit is
// configured.
const DefaultMaxConcurrent = 4

// Ensure TransferService implements the interface.
var _ driving.TransferOrchestrator = (*TransferService)(nil)

// TransferService coordinates the one-shot Drive to HubSpot transfer.
// Each file is an independent unit of work; the only shared resources
// are the stateless clients, so units need no locking.
type TransferService struct {
	fileStore driven.FileStore
	directory driven.ContactDirectory
	uploader  driven.AttachmentUploader

	folderID      string
	maxConcurrent int

	// now is injectable for report timestamp tests.
	now func() time.Time
}

// NewTransferService creates a transfer orchestrator for one folder.
func NewTransferService(
	fileStore driven.FileStore,
	directory driven.ContactDirectory,
	uploader driven.AttachmentUploader,
	folderID string,
	maxConcurrent int,
) *TransferService {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &TransferService{
		fileStore:     fileStore,
		directory:     directory,
		uploader:      uploader,
		folderID:      folderID,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

// Run lists the folder and processes every file concurrently. The
// returned error is non-nil only for fatal failures; per-file and
// per-recipient outcomes live in the report.
func (s *TransferService) Run(ctx context.Context) (*domain.TransferReport, error) {
	report := &domain.TransferReport{
		RunID:   uuid.New(),
		Started: s.now(),
	}

	files, err := s.fileStore.ListFolderFiles(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("list folder files: %w", err)
	}
	logger.Info("run %s: found %d files in folder %s", report.RunID, len(files), s.folderID)

	// One goroutine per file writing to its own slice index: no shared
	// mutable state between units of work.
	results := make([]domain.FileResult, len(files))
	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = s.processFile(ctx, file)
			return nil
		})
	}
	// Workers never return errors; failures are recorded per file.
	_ = g.Wait()

	report.Files = results
	report.Finished = s.now()
	return report, nil
}

// processFile runs one file's unit of work. It never panics out: an
// unexpected failure aborts this file only.
func (s *TransferService) processFile(ctx context.Context, file domain.DriveFile) (result domain.FileResult) {
	result.File = file

	defer func() {
		if r := recover(); r != nil {
			logger.Error("file %s: aborted: %v", file.Name, r)
			result.Status = domain.FileAborted
			result.Err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	content, err := s.fileStore.DownloadContent(ctx, file.ID, file.MIMEType)
	if err != nil {
		logger.Warn("file %s: download failed, skipping: %v", file.Name, err)
		result.Status = domain.FileDownloadFailed
		result.Err = err
		return result
	}

	emails, err := s.fileStore.ListSharedEmails(ctx, file.ID)
	if err != nil {
		logger.Warn("file %s: listing permissions failed, skipping: %v", file.Name, err)
		result.Status = domain.FilePermissionsFailed
		result.Err = err
		return result
	}
	if len(emails) == 0 {
		logger.Warn("file %s: no shared emails found, skipping", file.Name)
		result.Status = domain.FileNoRecipients
		result.Err = domain.ErrNoRecipients
		return result
	}

	// Recipients are handled sequentially within the file's unit of
	// work; a failure for one never stops the next.
	result.Recipients = make([]domain.RecipientResult, 0, len(emails))
	for _, email := range emails {
		result.Recipients = append(result.Recipients, s.attachToRecipient(ctx, file, content, email))
	}

	result.Status = domain.FileCompleted
	return result
}

// attachToRecipient resolves one email and attaches the file to the
// matching contact.
func (s *TransferService) attachToRecipient(
	ctx context.Context,
	file domain.DriveFile,
	content []byte,
	email string,
) domain.RecipientResult {
	result := domain.RecipientResult{Email: email}

	contact, err := s.directory.FindContactByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			logger.Warn("file %s: no contact found for %s", file.Name, email)
			result.Status = domain.RecipientNoContact
		} else {
			logger.Warn("file %s: contact lookup for %s failed: %v", file.Name, email, err)
			result.Status = domain.RecipientFailed
		}
		result.Err = err
		return result
	}
	result.ContactID = contact.ID

	if err := s.uploader.AttachFileToContact(ctx, file.Name, content, file.MIMEType, contact.ID); err != nil {
		logger.Warn("file %s: attach to contact %s failed: %v", file.Name, contact.ID, err)
		result.Status = domain.RecipientFailed
		result.Err = err
		return result
	}

	logger.Info("attached %s to contact %s (%s)", file.Name, contact.ID, email)
	result.Status = domain.RecipientAttached
	return result
}
