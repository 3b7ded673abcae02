// Package cli implements the command-line driving adapter. Commands
// talk to the core through driving ports held in package variables so
// tests can swap in mocks.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driving"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// transferOrchestrator runs the transfer. Left nil outside tests; the
// run command wires the real one from configuration.
var transferOrchestrator driving.TransferOrchestrator

// Persistent flag values.
var (
	verboseFlag  bool
	envFileFlag  string
	settingsFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gdrive-hub",
	Short: "Copy Google Drive files into HubSpot as contact attachments",
	Long: `gdrive-hub is a one-shot batch tool. It lists the files of a Google
Drive folder, downloads each one (exporting Workspace documents as PDF),
reads the file's sharing permissions, and attaches the file as a NOTE
engagement on every HubSpot contact whose email appears in those
permissions.

Configuration comes from the environment (GOOGLE_CREDENTIALS_PATH,
HUBSPOT_ACCESS_TOKEN, GOOGLE_FOLDER_ID; a .env file is picked up
automatically) plus an optional TOML settings file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(
		&envFileFlag, "env-file", "", "Path to a .env file to load (default: ./.env if present)")
	rootCmd.PersistentFlags().StringVar(
		&settingsFlag, "config", "", "Path to the TOML settings file (default: ~/.gdrive-hub/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
