package sdk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials indicates the login endpoint rejected the
	// email/password pair. Existing session state is left untouched.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionExpired indicates the refresh credential was rejected and the
	// session can no longer be renewed.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthenticated indicates an operation that requires a logged-in
	// identity was invoked without one.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidInput indicates a request was rejected locally before being
	// sent, because a required field was missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// APIError is a non-success response from the dashboard API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}

// IsDenied reports whether err is an API response rejecting the caller's
// credentials or role (401/403).
func IsDenied(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401 || apiErr.Status == 403
	}
	return false
}
