package study

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request or value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized indicates the backend rejected the credentials.
	// The client session is cleared when this is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested lecture, topic or subject does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated indicates no stored credentials are available.
	ErrNotAuthenticated = errors.New("not logged in")
)
