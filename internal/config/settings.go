package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default tunable values.
const (
	DefaultUploadFolderPath = "/imported-files"
	DefaultNoteTemplate     = "File uploaded from Google Drive: {name}"
	DefaultPageSize         = 100
	DefaultMaxConcurrent    = 4
	DefaultTokenCacheName   = "token.json"
)

// Default client-side request rates, kept below vendor quotas.
const (
	DefaultDriveRequestsPerSecond   = 8.0
	DefaultHubSpotRequestsPerSecond = 4.0
)

// Settings holds optional tunables read from the TOML settings file.
// Every field has a default; the file may be absent entirely.
type Settings struct {
	// UploadFolderPath is the logical HubSpot folder files land in.
	UploadFolderPath string `toml:"upload_folder_path"`

	// NoteTemplate is the engagement note body; {name} is replaced with
	// the source file name.
	NoteTemplate string `toml:"note_template"`

	// PageSize is the Drive API page size for listing calls.
	PageSize int64 `toml:"page_size"`

	// MaxConcurrent bounds the number of files processed at once.
	MaxConcurrent int `toml:"max_concurrent"`

	// TokenCachePath overrides where the cached OAuth token is stored.
	TokenCachePath string `toml:"token_cache_path"`

	// DriveRequestsPerSecond and HubSpotRequestsPerSecond tune the
	// client-side rate limiters.
	DriveRequestsPerSecond   float64 `toml:"drive_requests_per_second"`
	HubSpotRequestsPerSecond float64 `toml:"hubspot_requests_per_second"`
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		UploadFolderPath:         DefaultUploadFolderPath,
		NoteTemplate:             DefaultNoteTemplate,
		PageSize:                 DefaultPageSize,
		MaxConcurrent:            DefaultMaxConcurrent,
		DriveRequestsPerSecond:   DefaultDriveRequestsPerSecond,
		HubSpotRequestsPerSecond: DefaultHubSpotRequestsPerSecond,
	}
}

// LoadSettings reads the settings file at path, or the default location
// when path is empty. A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &settings, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	settings.applyDefaults()
	return &settings, nil
}

// applyDefaults backfills zero values so a sparse file behaves like the
// defaults.
func (s *Settings) applyDefaults() {
	def := DefaultSettings()
	if s.UploadFolderPath == "" {
		s.UploadFolderPath = def.UploadFolderPath
	}
	if s.NoteTemplate == "" {
		s.NoteTemplate = def.NoteTemplate
	}
	if s.PageSize <= 0 {
		s.PageSize = def.PageSize
	}
	if s.MaxConcurrent <= 0 {
		s.MaxConcurrent = def.MaxConcurrent
	}
	if s.DriveRequestsPerSecond <= 0 {
		s.DriveRequestsPerSecond = def.DriveRequestsPerSecond
	}
	if s.HubSpotRequestsPerSecond <= 0 {
		s.HubSpotRequestsPerSecond = def.HubSpotRequestsPerSecond
	}
}

// ResolveTokenCachePath resolves the cached-token location, defaulting
// to token.json inside the config directory.
func (s Settings) ResolveTokenCachePath() (string, error) {
	if s.TokenCachePath != "" {
		return s.TokenCachePath, nil
	}
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultTokenCacheName), nil
}
