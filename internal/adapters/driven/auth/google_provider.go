package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

// Ensure GoogleTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*GoogleTokenProvider)(nil)

// GoogleTokenProvider provides Google OAuth access tokens with automatic
// refresh. The token blob lives in a JSON cache file; it is read at
// startup and rewritten whenever a refresh produces new tokens.
type GoogleTokenProvider struct {
	oauthConfig *oauth2.Config
	cachePath   string

	mu     sync.Mutex
	cached *oauth2.Token
}

// NewGoogleTokenProvider creates a provider from an OAuth client secret
// file and a token cache path. The client secret must be an installed-app
// credential with the Drive read-only scope.
func NewGoogleTokenProvider(credentialsPath, cachePath string, scopes ...string) (*GoogleTokenProvider, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read client secret %s: %w", credentialsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secret: %w", domain.ErrAuthInvalid, err)
	}

	return &GoogleTokenProvider{
		oauthConfig: cfg,
		cachePath:   cachePath,
	}, nil
}

// OAuthConfig exposes the parsed OAuth configuration for the consent flow.
func (p *GoogleTokenProvider) OAuthConfig() *oauth2.Config {
	return p.oauthConfig
}

// CachePath returns the token cache location.
func (p *GoogleTokenProvider) CachePath() string {
	return p.cachePath
}

// GetToken returns a valid access token, refreshing and rewriting the
// cache when the stored token has expired.
func (p *GoogleTokenProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached == nil {
		tok, err := readTokenCache(p.cachePath)
		if err != nil {
			return "", fmt.Errorf("%w: no cached credential (run `gdrive-hub auth google`): %w",
				domain.ErrAuthExpired, err)
		}
		p.cached = tok
	}

	if p.cached.Valid() {
		return p.cached.AccessToken, nil
	}

	refreshed, err := p.oauthConfig.TokenSource(ctx, p.cached).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenRefreshFailed, err)
	}

	if refreshed.AccessToken != p.cached.AccessToken {
		if err := writeTokenCache(p.cachePath, refreshed); err != nil {
			// The token is still usable this run; losing the cache only
			// forces an extra refresh next time.
			logger.Warn("write token cache: %v", err)
		}
	}
	p.cached = refreshed

	return refreshed.AccessToken, nil
}

// IsAuthenticated returns true if a cached credential exists that can
// produce tokens without an interactive consent flow.
func (p *GoogleTokenProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached.Valid() || p.cached.RefreshToken != ""
	}

	tok, err := readTokenCache(p.cachePath)
	if err != nil {
		return false
	}
	return tok.Valid() || tok.RefreshToken != ""
}

// readTokenCache reads an oauth2 token blob from the cache file.
func readTokenCache(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token cache %s: %w", path, err)
	}
	return &tok, nil
}

// writeTokenCache persists a token blob with restricted permissions.
func writeTokenCache(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
