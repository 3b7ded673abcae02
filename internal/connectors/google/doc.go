// Package google provides shared infrastructure for the Google Drive
// connector.
//
// This package contains:
//   - TokenSource adapter to bridge the TokenProvider port to oauth2.TokenSource
//   - Service factory for creating the Drive API client
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scope
//
// The connector only reads files and permissions, so it requests:
//   - https://www.googleapis.com/auth/drive.readonly (restricted)
//
// For user-created internal apps, restricted scopes don't require verification.
package google
