package auth

import (
	"context"
	"fmt"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider provides a fixed bearer token. Used for the
// HubSpot private-app token, which doesn't expire and doesn't require
// refresh.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a private-app token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the static token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", fmt.Errorf("%w: empty access token", domain.ErrAuthInvalid)
	}
	return p.token, nil
}

// IsAuthenticated returns true if a token is configured.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
