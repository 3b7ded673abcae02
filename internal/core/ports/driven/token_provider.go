package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
// Implementations handle cached-token reads and refresh transparently,
// so the workflow never sees raw OAuth state.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// If the current token is expired, it will be refreshed automatically
	// and the refreshed token written back to the cache.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available
	// without running an interactive consent flow.
	IsAuthenticated() bool
}
