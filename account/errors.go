package account

import "errors"

// Common errors returned by the account client.
var (
	// ErrMissingTransaction is returned when a top-up is requested without
	// a transaction ID.
	ErrMissingTransaction = errors.New("transaction ID is required")
)
