package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStatus is the terminal outcome for one file's unit of work.
type FileStatus string

const (
	// FileCompleted means the recipient loop ran to the end.
	// Per-recipient statuses carry the detail.
	FileCompleted FileStatus = "completed"

	// FileDownloadFailed means content could not be downloaded or exported.
	FileDownloadFailed FileStatus = "download_failed"

	// FilePermissionsFailed means the sharing grants could not be listed.
	FilePermissionsFailed FileStatus = "permissions_failed"

	// FileNoRecipients means the sharing list contained no email addresses.
	FileNoRecipients FileStatus = "no_recipients"

	// FileAborted means an unexpected failure stopped this file's unit of
	// work. Other files are unaffected.
	FileAborted FileStatus = "aborted"
)

// RecipientStatus is the outcome for one (file, email) pair.
type RecipientStatus string

const (
	// RecipientAttached means upload and engagement both succeeded.
	RecipientAttached RecipientStatus = "attached"

	// RecipientNoContact means no CRM contact matched the email.
	RecipientNoContact RecipientStatus = "no_contact"

	// RecipientFailed means upload or engagement creation failed.
	RecipientFailed RecipientStatus = "failed"
)

// RecipientResult records the outcome of attaching a file to one recipient.
type RecipientResult struct {
	// Email is the recipient address from the sharing grant.
	Email string

	// ContactID is the resolved CRM contact, empty when unresolved.
	ContactID string

	// Status is the terminal outcome for this recipient.
	Status RecipientStatus

	// Err holds the cause for non-attached outcomes.
	Err error
}

// FileResult records the outcome of one file's unit of work.
type FileResult struct {
	// File is the processed file snapshot.
	File DriveFile

	// Status is the terminal outcome for the file.
	Status FileStatus

	// Err holds the cause for failed outcomes.
	Err error

	// Recipients holds per-recipient outcomes, in sharing-grant order.
	Recipients []RecipientResult
}

// Attached counts recipients successfully attached for this file.
func (r FileResult) Attached() int {
	n := 0
	for _, rec := range r.Recipients {
		if rec.Status == RecipientAttached {
			n++
		}
	}
	return n
}

// TransferReport aggregates the outcomes of a single run. It is the only
// result channel: nothing is persisted across runs.
type TransferReport struct {
	// RunID uniquely identifies the run in log output.
	RunID uuid.UUID

	// Started and Finished bound the run.
	Started  time.Time
	Finished time.Time

	// Files holds one result per listed file.
	Files []FileResult
}

// Counts returns the number of completed files, failed files and
// attached recipients across the run.
func (r *TransferReport) Counts() (completed, failed, attached int) {
	for _, f := range r.Files {
		if f.Status == FileCompleted {
			completed++
		} else {
			failed++
		}
		attached += f.Attached()
	}
	return completed, failed, attached
}

// Summary renders the human-readable per-file/per-recipient result log.
func (r *TransferReport) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s processed %d files in %s\n",
		r.RunID, len(r.Files), r.Finished.Sub(r.Started).Round(time.Millisecond))

	for _, f := range r.Files {
		switch f.Status {
		case FileCompleted:
			fmt.Fprintf(&b, "  %s: %d/%d recipients attached\n",
				f.File.Name, f.Attached(), len(f.Recipients))
		default:
			fmt.Fprintf(&b, "  %s: %s", f.File.Name, f.Status)
			if f.Err != nil {
				fmt.Fprintf(&b, " (%v)", f.Err)
			}
			b.WriteString("\n")
		}

		for _, rec := range f.Recipients {
			switch rec.Status {
			case RecipientAttached:
				fmt.Fprintf(&b, "    %s: attached (contact %s)\n", rec.Email, rec.ContactID)
			case RecipientNoContact:
				fmt.Fprintf(&b, "    %s: no contact found\n", rec.Email)
			case RecipientFailed:
				fmt.Fprintf(&b, "    %s: failed (%v)\n", rec.Email, rec.Err)
			}
		}
	}

	completed, failed, attached := r.Counts()
	fmt.Fprintf(&b, "Done: %d completed, %d failed, %d attachments created\n",
		completed, failed, attached)

	return b.String()
}
