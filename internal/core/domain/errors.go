package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingConfig indicates a required configuration setting is absent.
	// Fatal: the run aborts before any network activity.
	ErrMissingConfig = errors.New("required configuration missing")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrAuthExpired indicates the authentication has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrContactNotFound indicates no CRM contact matched a recipient email.
	// Soft: the recipient is skipped, siblings are still attempted.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoRecipients indicates a file's sharing list contains no email addresses.
	// Soft: the file is skipped, other files are unaffected.
	ErrNoRecipients = errors.New("no shared recipients")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
