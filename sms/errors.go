package sms

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Common errors returned by the SMS client.
var (
	// ErrMissingRecipient is returned when a message has no destination.
	ErrMissingRecipient = errors.New("message recipient is required")
	// ErrMissingSender is returned when a message has no sender.
	ErrMissingSender = errors.New("message sender is required")
	// ErrEmptyMessage is returned when a text message has no body.
	ErrEmptyMessage = errors.New("message text is required")
)

// PartError is the failure of a single message part. The API reports these
// inside an HTTP 200 response, so they are mapped to errors here.
type PartError struct {
	Part Part
}

// Error implements the error interface.
func (e *PartError) Error() string {
	return fmt.Sprintf("message part to %s failed: status %s: %s", e.Part.To, e.Part.Status, e.Part.ErrorText)
}

// PartialError is returned when some parts of a send were accepted and
// others rejected. Succeeded exposes the accepted parts so callers can
// account for what was actually sent.
type PartialError struct {
	Succeeded []Part
	Failed    []Part
	errs      *multierror.Error
}

func newPartialError(succeeded, failed []Part) *PartialError {
	var errs *multierror.Error
	for _, p := range failed {
		errs = multierror.Append(errs, &PartError{Part: p})
	}
	return &PartialError{Succeeded: succeeded, Failed: failed, errs: errs}
}

// Error implements the error interface.
func (e *PartialError) Error() string {
	return fmt.Sprintf("%d of %d message parts failed: %v",
		len(e.Failed), len(e.Failed)+len(e.Succeeded), e.errs)
}

// Unwrap exposes the aggregated per-part errors to errors.Is/As.
func (e *PartialError) Unwrap() error {
	return e.errs
}
