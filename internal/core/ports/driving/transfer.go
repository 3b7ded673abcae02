package driving

import (
	"context"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

// TransferOrchestrator runs the one-shot Drive to HubSpot transfer.
type TransferOrchestrator interface {
	// Run lists the source folder and processes every file, fanning out
	// one independent unit of work per file. The returned report carries
	// per-file and per-recipient outcomes; the error is non-nil only for
	// fatal failures (configuration, auth, listing).
	Run(ctx context.Context) (*domain.TransferReport, error)
}
