package voice

import "errors"

// Common errors returned by the voice client.
var (
	// ErrMissingDestination is returned when a call has no destination.
	ErrMissingDestination = errors.New("call destination is required")
	// ErrMissingUUID is returned when no call UUID is given.
	ErrMissingUUID = errors.New("call UUID is required")
)
