package hubspot

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.hubapi.com"
	DefaultTimeout = 30 * time.Second

	// DefaultRate keeps well under HubSpot's private-app burst limits.
	DefaultRate      = 4.0
	DefaultBurstSize = 10

	// DefaultFolderPath is the logical folder uploads land in.
	DefaultFolderPath = "/imported-files"

	// DefaultNoteTemplate is the engagement note body; {name} is
	// replaced with the source file name.
	DefaultNoteTemplate = "File uploaded from Google Drive: {name}"
)

// Config holds configuration for the HubSpot client.
type Config struct {
	// TokenProvider supplies the private-app bearer token (required).
	TokenProvider driven.TokenProvider

	// BaseURL is the API base URL (default: https://api.hubapi.com).
	// Changed in tests.
	BaseURL string

	// FolderPath is the upload destination (default: /imported-files).
	FolderPath string

	// NoteTemplate is the engagement note body template.
	NoteTemplate string

	// RequestsPerSecond tunes the client-side rate limiter.
	RequestsPerSecond float64

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client issues authenticated HubSpot API requests. It is stateless
// between requests and safe for concurrent use.
type Client struct {
	client        *http.Client
	baseURL       string
	tokenProvider driven.TokenProvider
	limiter       *rate.Limiter
	folderPath    string
	noteTemplate  string

	// now is injectable for engagement timestamp tests.
	now func() time.Time
}

// NewClient creates a HubSpot API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.TokenProvider == nil {
		return nil, fmt.Errorf("hubspot: token provider is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FolderPath == "" {
		cfg.FolderPath = DefaultFolderPath
	}
	if cfg.NoteTemplate == "" {
		cfg.NoteTemplate = DefaultNoteTemplate
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRate
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:       cfg.BaseURL,
		tokenProvider: cfg.TokenProvider,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurstSize),
		folderPath:    cfg.FolderPath,
		noteTemplate:  cfg.NoteTemplate,
		now:           time.Now,
	}, nil
}

// post issues an authenticated POST with the given body and content type.
// The caller owns the response and must close its body.
func (c *Client) post(ctx context.Context, path, contentType string, body []byte) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}

	return resp, nil
}
