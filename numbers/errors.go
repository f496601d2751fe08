package numbers

import (
	"errors"
	"fmt"
)

// Common errors returned by the numbers client.
var (
	// ErrMissingCountry is returned when no country code is given.
	ErrMissingCountry = errors.New("country code is required")
	// ErrMissingMSISDN is returned when no number is given.
	ErrMissingMSISDN = errors.New("msisdn is required")
)

// orderStatusOK is the in-body code for a successful buy or cancel.
const orderStatusOK = "200"

// OrderError is a buy or cancel rejection reported in the response body.
type OrderError struct {
	MSISDN    string
	Code      string
	CodeLabel string
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	return fmt.Sprintf("number order for %s failed: code %s: %s", e.MSISDN, e.Code, e.CodeLabel)
}
