package careapi

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when an auth-required call is attempted
// with no access token in the store. No network request is made.
var ErrUnauthenticated = errors.New("not authenticated")

// AuthError is a terminal authentication failure for a call: a 401 that
// could not be recovered by the refresh cycle. It always follows session
// teardown.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError represents a non-401 application error returned by the backend.
// Tokens are left untouched when it occurs.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Oxycare API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// NetworkError is a transport-level failure with no HTTP response at all.
// It is never mistaken for a 401 and never triggers a refresh.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Oxycare API unreachable (endpoint: %s): %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
