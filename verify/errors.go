package verify

import (
	"errors"
	"fmt"

	"github.com/nexmo-community/nexmo-go/rest"
)

// Common errors returned by the verify client.
var (
	// ErrMissingNumber is returned when no number is given.
	ErrMissingNumber = errors.New("number is required")
	// ErrMissingBrand is returned when no brand is given.
	ErrMissingBrand = errors.New("brand is required")
	// ErrMissingRequestID is returned when no request ID is given.
	ErrMissingRequestID = errors.New("request ID is required")
)

// In-body status codes. The API reports failures inside HTTP 200
// responses; any status other than statusOK is an error.
const (
	statusOK             = "0"
	statusThrottled      = "1"
	statusInvalidValue   = "3"
	statusBadCredentials = "4"
	statusNotFound       = "6"
)

// StatusError is a verification failure reported in the response body.
type StatusError struct {
	RequestID string
	Status    string
	ErrorText string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("verify request %s failed: status %s: %s", e.RequestID, e.Status, e.ErrorText)
	}
	return fmt.Sprintf("verify failed: status %s: %s", e.Status, e.ErrorText)
}

// Unwrap maps well-known statuses onto the transport sentinels so callers
// can classify with errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case statusThrottled:
		return rest.ErrThrottled
	case statusBadCredentials:
		return rest.ErrUnauthorized
	case statusNotFound:
		return rest.ErrNotFound
	}
	return nil
}

// statusError builds a StatusError unless the status is OK.
func statusError(requestID, status, errorText string) error {
	if status == statusOK {
		return nil
	}
	return &StatusError{RequestID: requestID, Status: status, ErrorText: errorText}
}
