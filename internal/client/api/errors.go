package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the two failure classes callers branch on.
// Match with errors.Is.
var (
	// ErrUnavailable means no HTTP response was received at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-success HTTP response. StatusCode is always set;
// Message carries the server's message field when one was present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Unwrap maps auth-related statuses onto ErrUnauthorized so callers can use
// errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
