package hubspot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokenProvider returns a fixed token, like the private-app provider.
type staticTokenProvider struct {
	token string
	err   error
}

func (p *staticTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

func (p *staticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

// newTestClient wires a Client against a fake HubSpot server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		TokenProvider:     &staticTokenProvider{token: "pat-na1-test"},
		BaseURL:           server.URL,
		RequestsPerSecond: 1000,
	})
	require.NoError(t, err)

	// Fixed clock for engagement timestamps.
	client.now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	return client
}

func TestNewClient_RequiresTokenProvider(t *testing.T) {
	_, err := NewClient(Config{})

	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{TokenProvider: &staticTokenProvider{token: "pat"}})

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultFolderPath, client.folderPath)
	assert.Equal(t, DefaultNoteTemplate, client.noteTemplate)
}

func TestPost_SetsBearerAuth(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))

	_, _ = client.FindContactByEmail(context.Background(), "a@x.com")

	assert.Equal(t, "Bearer pat-na1-test", gotAuth)
}

func TestPost_TokenProviderFailure(t *testing.T) {
	client, err := NewClient(Config{
		TokenProvider: &staticTokenProvider{err: errors.New("no credentials")},
	})
	require.NoError(t, err)

	_, err = client.FindContactByEmail(context.Background(), "a@x.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get token")
}
