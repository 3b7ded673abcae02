// Package auth implements the TokenProvider port for both vendors.
//
// GoogleTokenProvider owns the cached OAuth credential lifecycle: it
// reads the token cache at startup, refreshes expired tokens through the
// OAuth client secret, and rewrites the cache after refresh or first
// consent. StaticTokenProvider wraps the HubSpot private-app token,
// which never expires and needs no refresh.
//
// The interactive consent flow (RunConsentFlow) uses a loopback redirect
// with PKCE and is only reachable through the `auth google` command; the
// transfer workflow itself never triggers interaction.
package auth
