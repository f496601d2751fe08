package application

import "errors"

// Common errors returned by the application client.
var (
	// ErrMissingName is returned when creating an application without a
	// name.
	ErrMissingName = errors.New("application name is required")
	// ErrMissingID is returned when no application ID is given.
	ErrMissingID = errors.New("application ID is required")
)
