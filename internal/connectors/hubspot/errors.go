package hubspot

import "fmt"

// Operation names carried by StatusError.
const (
	OpSearchContacts   = "search contacts"
	OpUploadFile       = "upload file"
	OpCreateEngagement = "create engagement"
)

// StatusError is returned for any non-success HTTP status, carrying the
// status code and response body so failures are diagnosable from the log.
type StatusError struct {
	// Op names the failed operation.
	Op string

	// StatusCode is the HTTP status returned.
	StatusCode int

	// Body is the response body, truncated for log hygiene.
	Body string
}

// maxBodyInError bounds how much response body an error carries.
const maxBodyInError = 512

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("hubspot: %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

// newStatusError builds a StatusError with a truncated body.
func newStatusError(op string, statusCode int, body []byte) *StatusError {
	s := string(body)
	if len(s) > maxBodyInError {
		s = s[:maxBodyInError]
	}
	return &StatusError{Op: op, StatusCode: statusCode, Body: s}
}
