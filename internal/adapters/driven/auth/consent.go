package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

// consentTimeout bounds how long the flow waits for the browser redirect.
const consentTimeout = 5 * time.Minute

// callbackResult carries the redirect parameters from the HTTP handler.
type callbackResult struct {
	code string
	err  error
}

// RunConsentFlow performs the interactive first-consent OAuth flow:
// prints an authorization URL, receives the code on a loopback redirect
// with PKCE and CSRF state checks, exchanges it for tokens and writes
// the token cache. Instructions are printed to out.
func RunConsentFlow(ctx context.Context, cfg *oauth2.Config, cachePath string, out io.Writer) error {
	verifier, err := generateCodeVerifier()
	if err != nil {
		return fmt.Errorf("generate code verifier: %w", err)
	}
	state, err := generateState()
	if err != nil {
		return fmt.Errorf("generate state: %w", err)
	}

	port, err := findAvailablePort(consentPortStart, consentPortEnd)
	if err != nil {
		return fmt.Errorf("consent redirect listener: %w", err)
	}

	// Work on a copy so the shared config keeps its redirect URL.
	flowCfg := *cfg
	flowCfg.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callbackResult{err: errors.New("state mismatch in redirect")}
			return
		}
		if errCode := q.Get("error"); errCode != "" {
			http.Error(w, "authorization denied", http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("authorization denied: %s", errCode)}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this tab.")
		results <- callbackResult{code: q.Get("code")}
	})

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("listen on consent port: %w", err)
	}
	server := &http.Server{Handler: mux}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Warn("consent server: %v", serveErr)
		}
	}()
	defer server.Close()

	authURL := flowCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
	fmt.Fprintf(out, "Open the following URL in your browser to authorize access:\n\n%s\n\n", authURL)
	fmt.Fprintf(out, "Waiting for authorization on 127.0.0.1:%d...\n", port)

	ctx, cancel := context.WithTimeout(ctx, consentTimeout)
	defer cancel()

	var result callbackResult
	select {
	case result = <-results:
	case <-ctx.Done():
		return fmt.Errorf("consent flow: %w", ctx.Err())
	}
	if result.err != nil {
		return result.err
	}

	token, err := flowCfg.Exchange(ctx, result.code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return fmt.Errorf("%w: exchange authorization code: %w", domain.ErrAuthInvalid, err)
	}

	if err := writeTokenCache(cachePath, token); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}

	fmt.Fprintf(out, "Credential saved to %s\n", cachePath)
	return nil
}
