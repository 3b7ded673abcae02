package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saran-io/gdrive-hub-integration/internal/adapters/driven/auth"
	"github.com/saran-io/gdrive-hub-integration/internal/config"
	"github.com/saran-io/gdrive-hub-integration/internal/connectors/google"
	"github.com/saran-io/gdrive-hub-integration/internal/connectors/google/drive"
	"github.com/saran-io/gdrive-hub-integration/internal/connectors/hubspot"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driving"
	"github.com/saran-io/gdrive-hub-integration/internal/core/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Drive to HubSpot transfer once",
	Long: `Processes every file in the configured Drive folder once and exits.
Per-file and per-recipient failures are reported but do not stop the
run; the command fails only when listing the folder or loading the
configuration fails.`,
	RunE: runTransfer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runTransfer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	orchestrator := transferOrchestrator
	if orchestrator == nil {
		var err error
		orchestrator, err = buildTransferOrchestrator(ctx)
		if err != nil {
			return err
		}
	}

	report, err := orchestrator.Run(ctx)
	if err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	cmd.Print(report.Summary())
	return nil
}

// buildTransferOrchestrator wires the real connectors from configuration.
func buildTransferOrchestrator(ctx context.Context) (driving.TransferOrchestrator, error) {
	cfg, err := config.Load(envFileFlag, settingsFlag)
	if err != nil {
		return nil, err
	}

	cachePath, err := cfg.Settings.ResolveTokenCachePath()
	if err != nil {
		return nil, err
	}
	googleProvider, err := auth.NewGoogleTokenProvider(cfg.GoogleCredentialsPath, cachePath, google.DriveScope)
	if err != nil {
		return nil, err
	}
	if !googleProvider.IsAuthenticated() {
		return nil, fmt.Errorf("no cached Google credential; run `gdrive-hub auth google` first")
	}

	driveSvc, err := google.NewDriveService(ctx, google.NewTokenSource(ctx, googleProvider))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	fileStore := drive.NewFileStore(
		driveSvc,
		google.NewRateLimiter(cfg.Settings.DriveRequestsPerSecond),
		cfg.Settings.PageSize,
	)

	hub, err := hubspot.NewClient(hubspot.Config{
		TokenProvider:     auth.NewStaticTokenProvider(cfg.HubSpotAccessToken),
		FolderPath:        cfg.Settings.UploadFolderPath,
		NoteTemplate:      cfg.Settings.NoteTemplate,
		RequestsPerSecond: cfg.Settings.HubSpotRequestsPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("create hubspot client: %w", err)
	}

	return services.NewTransferService(
		fileStore, hub, hub,
		cfg.GoogleFolderID,
		cfg.Settings.MaxConcurrent,
	), nil
}
