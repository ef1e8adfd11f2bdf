package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the token was missing or rejected. The session
	// is invalidated and no further authenticated calls go out until a new
	// token is set.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrItemUnavailable means a purchase hit an already-sold item.
	ErrItemUnavailable = errors.New("item not available")

	// ErrEmptyContent means a message was blank after trimming. Raised
	// locally, before any network call.
	ErrEmptyContent = errors.New("message content is empty")
)

// APIError is an unexpected response: a non-2xx status outside the typed
// taxonomy, or a body that did not decode. Treated as a transport-level
// failure by callers; no automatic retry.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}
