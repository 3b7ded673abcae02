package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

// writeClientSecret creates an installed-app client secret file, with
// token_uri pointed at tokenURL so refresh hits the test server.
func writeClientSecret(t *testing.T, dir, tokenURL string) string {
	t.Helper()

	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	secret := fmt.Sprintf(`{
		"installed": {
			"client_id": "client-id-123",
			"client_secret": "client-secret-456",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "%s",
			"redirect_uris": ["http://localhost"]
		}
	}`, tokenURL)

	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(secret), 0600))
	return path
}

func writeCachedToken(t *testing.T, dir string, tok *oauth2.Token) string {
	t.Helper()

	path := filepath.Join(dir, "token.json")
	data, err := json.Marshal(tok)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestNewGoogleTokenProvider_BadSecretFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := NewGoogleTokenProvider(path, filepath.Join(dir, "token.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestNewGoogleTokenProvider_MissingSecretFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewGoogleTokenProvider(filepath.Join(dir, "nope.json"), filepath.Join(dir, "token.json"))

	assert.Error(t, err)
}

func TestGetToken_ValidCachedToken(t *testing.T) {
	dir := t.TempDir()
	secretPath := writeClientSecret(t, dir, "")
	cachePath := writeCachedToken(t, dir, &oauth2.Token{
		AccessToken: "cached-token",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	})

	provider, err := NewGoogleTokenProvider(secretPath, cachePath)
	require.NoError(t, err)

	token, err := provider.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cached-token", token)
}

func TestGetToken_NoCachedToken(t *testing.T) {
	dir := t.TempDir()
	secretPath := writeClientSecret(t, dir, "")

	provider, err := NewGoogleTokenProvider(secretPath, filepath.Join(dir, "token.json"))
	require.NoError(t, err)

	_, err = provider.GetToken(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthExpired)
}

func TestGetToken_RefreshesAndRewritesCache(t *testing.T) {
	refreshServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "fresh-token",
			"token_type": "Bearer",
			"refresh_token": "refresh-1",
			"expires_in": 3600
		}`))
	}))
	defer refreshServer.Close()

	dir := t.TempDir()
	secretPath := writeClientSecret(t, dir, refreshServer.URL)
	cachePath := writeCachedToken(t, dir, &oauth2.Token{
		AccessToken:  "stale-token",
		TokenType:    "Bearer",
		RefreshToken: "refresh-1",
		Expiry:       time.Now().Add(-time.Hour),
	})

	provider, err := NewGoogleTokenProvider(secretPath, cachePath)
	require.NoError(t, err)

	token, err := provider.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	// Cache rewritten with the refreshed token.
	rewritten, err := readTokenCache(cachePath)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", rewritten.AccessToken)
	assert.Equal(t, "refresh-1", rewritten.RefreshToken)
}

func TestGetToken_RefreshFailure(t *testing.T) {
	refreshServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer refreshServer.Close()

	dir := t.TempDir()
	secretPath := writeClientSecret(t, dir, refreshServer.URL)
	cachePath := writeCachedToken(t, dir, &oauth2.Token{
		AccessToken:  "stale-token",
		RefreshToken: "revoked",
		Expiry:       time.Now().Add(-time.Hour),
	})

	provider, err := NewGoogleTokenProvider(secretPath, cachePath)
	require.NoError(t, err)

	_, err = provider.GetToken(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
}

func TestIsAuthenticated(t *testing.T) {
	dir := t.TempDir()
	secretPath := writeClientSecret(t, dir, "")

	t.Run("no cache file", func(t *testing.T) {
		provider, err := NewGoogleTokenProvider(secretPath, filepath.Join(dir, "absent.json"))
		require.NoError(t, err)
		assert.False(t, provider.IsAuthenticated())
	})

	t.Run("expired token with refresh token", func(t *testing.T) {
		cachePath := writeCachedToken(t, dir, &oauth2.Token{
			AccessToken:  "stale",
			RefreshToken: "refresh-1",
			Expiry:       time.Now().Add(-time.Hour),
		})
		provider, err := NewGoogleTokenProvider(secretPath, cachePath)
		require.NoError(t, err)
		assert.True(t, provider.IsAuthenticated())
	})
}

func TestStaticTokenProvider(t *testing.T) {
	provider := NewStaticTokenProvider("pat-na1-secret")

	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pat-na1-secret", token)
	assert.True(t, provider.IsAuthenticated())

	empty := NewStaticTokenProvider("")
	_, err = empty.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
	assert.False(t, empty.IsAuthenticated())
}
