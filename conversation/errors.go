package conversation

import "errors"

// Common errors returned by the conversation client.
var (
	// ErrMissingUUID is returned when no conversation UUID is given.
	ErrMissingUUID = errors.New("conversation UUID is required")
)
