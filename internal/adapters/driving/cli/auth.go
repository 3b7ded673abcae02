package cli

import (
	"github.com/spf13/cobra"

	"github.com/saran-io/gdrive-hub-integration/internal/adapters/driven/auth"
	"github.com/saran-io/gdrive-hub-integration/internal/config"
	"github.com/saran-io/gdrive-hub-integration/internal/connectors/google"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Google credential",
	Long: `Authorize Drive access and inspect the cached credential.

The first run needs an interactive consent:

  gdrive-hub auth google

After that the cached token is refreshed automatically and 'run' works
non-interactively. HubSpot uses the private-app token from
HUBSPOT_ACCESS_TOKEN and needs no consent flow.`,
}

var authGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Authorize Google Drive access interactively",
	RunE:  runAuthGoogle,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a usable Google credential is cached",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authGoogleCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthGoogle(cmd *cobra.Command, _ []string) error {
	credentialsPath, cachePath, err := config.LoadAuth(envFileFlag, settingsFlag)
	if err != nil {
		return err
	}

	provider, err := auth.NewGoogleTokenProvider(credentialsPath, cachePath, google.DriveScope)
	if err != nil {
		return err
	}

	return auth.RunConsentFlow(cmd.Context(), provider.OAuthConfig(), provider.CachePath(), cmd.OutOrStdout())
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	credentialsPath, cachePath, err := config.LoadAuth(envFileFlag, settingsFlag)
	if err != nil {
		return err
	}

	provider, err := auth.NewGoogleTokenProvider(credentialsPath, cachePath, google.DriveScope)
	if err != nil {
		return err
	}

	if provider.IsAuthenticated() {
		cmd.Printf("Google credential cached at %s\n", cachePath)
	} else {
		cmd.Println("No usable Google credential; run `gdrive-hub auth google`.")
	}
	return nil
}
