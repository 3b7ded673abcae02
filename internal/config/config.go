// Package config loads run configuration from the environment and an
// optional TOML settings file.
//
// The three required settings come from environment variables (a .env
// file is auto-loaded when present, matching the deployment habit this
// tool inherits): GOOGLE_CREDENTIALS_PATH, HUBSPOT_ACCESS_TOKEN and
// GOOGLE_FOLDER_ID. Absence of any of them fails the run before any
// network call. Tunables live in the settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

// Environment variable names for the required settings.
const (
	EnvGoogleCredentialsPath = "GOOGLE_CREDENTIALS_PATH"
	EnvHubSpotAccessToken    = "HUBSPOT_ACCESS_TOKEN"
	EnvGoogleFolderID        = "GOOGLE_FOLDER_ID"
)

// ConfigDirName is the per-user directory holding settings and the
// cached OAuth token.
const ConfigDirName = ".gdrive-hub"

// Config is the validated run configuration.
type Config struct {
	// GoogleCredentialsPath points to the OAuth client secret JSON.
	GoogleCredentialsPath string

	// HubSpotAccessToken is the private-app bearer token.
	HubSpotAccessToken string

	// GoogleFolderID is the Drive folder to process.
	GoogleFolderID string

	// Settings holds optional tunables from the settings file.
	Settings Settings
}

// Load reads the environment (after loading envFile when it exists) and
// the settings file, validating required values. settingsPath may be
// empty to use the default location; a missing settings file is fine.
func Load(envFile, settingsPath string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: a .env in the working directory is optional.
		_ = godotenv.Load()
	}

	cfg := &Config{
		GoogleCredentialsPath: os.Getenv(EnvGoogleCredentialsPath),
		HubSpotAccessToken:    os.Getenv(EnvHubSpotAccessToken),
		GoogleFolderID:        os.Getenv(EnvGoogleFolderID),
	}

	for _, req := range []struct {
		key, val string
	}{
		{EnvGoogleCredentialsPath, cfg.GoogleCredentialsPath},
		{EnvHubSpotAccessToken, cfg.HubSpotAccessToken},
		{EnvGoogleFolderID, cfg.GoogleFolderID},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("%w: %s not set in environment", domain.ErrMissingConfig, req.key)
		}
	}

	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	cfg.Settings = *settings

	return cfg, nil
}

// LoadAuth resolves just what the consent flow needs: the client secret
// path from the environment and the token cache location from settings.
// The HubSpot and folder settings may be absent at this point.
func LoadAuth(envFile, settingsPath string) (credentialsPath, tokenCachePath string, err error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return "", "", fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	credentialsPath = os.Getenv(EnvGoogleCredentialsPath)
	if credentialsPath == "" {
		return "", "", fmt.Errorf("%w: %s not set in environment", domain.ErrMissingConfig, EnvGoogleCredentialsPath)
	}

	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return "", "", fmt.Errorf("load settings: %w", err)
	}
	tokenCachePath, err = settings.ResolveTokenCachePath()
	if err != nil {
		return "", "", err
	}
	return credentialsPath, tokenCachePath, nil
}

// DefaultConfigDir returns the per-user configuration directory,
// creating it if needed.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ConfigDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
