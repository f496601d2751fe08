package auth

import (
	"errors"
	"strings"
)

// ErrMissingCredentials indicates the configured credential set cannot
// satisfy the authentication an endpoint requires.
var ErrMissingCredentials = errors.New("missing credentials for requested authentication")

// MissingCredentialsError reports which methods were acceptable when no
// supported one was found. It unwraps to ErrMissingCredentials.
type MissingCredentialsError struct {
	Accepted []Method
}

// Error implements the error interface.
func (e *MissingCredentialsError) Error() string {
	if len(e.Accepted) == 0 {
		return "no usable credentials configured"
	}
	names := make([]string, len(e.Accepted))
	for i, m := range e.Accepted {
		names[i] = m.String()
	}
	return "credentials do not support any of: " + strings.Join(names, ", ")
}

// Unwrap implements errors.Is support.
func (e *MissingCredentialsError) Unwrap() error {
	return ErrMissingCredentials
}
