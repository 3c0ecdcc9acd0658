package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers network failures and request timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the session was rejected (401); the session
	// store has been cleared by the time a caller sees this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the action is not permitted for the current role
	// (403); the session stays intact.
	ErrForbidden = errors.New("access denied")

	// ErrRateLimited means the backend returned 429. No automatic retry is
	// performed anywhere in this layer.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer covers 5xx responses.
	ErrServer = errors.New("server error")
)

// APIError carries a backend-provided message for other 4xx responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
