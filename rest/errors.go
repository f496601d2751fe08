package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the REST transport.
var (
	// ErrUnauthorized indicates the configured credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized: credentials rejected")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrThrottled indicates the API rate limit was exceeded.
	ErrThrottled = errors.New("request was rate limited")

	// ErrNoNextPage is returned by iterators when pagination is exhausted.
	ErrNoNextPage = errors.New("no next page")
)

// APIError is the base error type for failures reported by the API. Every
// error raised from a response embeds it, so callers can classify with
// errors.As(&rest.APIError{}) or use the branch types below.
type APIError struct {
	StatusCode int
	Code       string // API error code from the response body, if any
	Title      string
	Detail     string
	Body       string // raw response body for diagnostics
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("nexmo: API error: status %d: %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("nexmo: API error: status %d", e.StatusCode)
}

// IsNotFound reports whether the error is a not-found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsAuthFailure reports whether the error is an authentication failure.
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// RequestError is the client-usage branch: the request itself was at fault
// (4xx). Fixing the call, parameters, or credentials is required; retrying
// unchanged will not help.
type RequestError struct {
	APIError
}

// Unwrap maps well-known statuses onto sentinel errors for errors.Is.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrThrottled
	}
	return nil
}

// ValidationError is a request error carrying per-parameter detail from the
// API's validation response.
type ValidationError struct {
	RequestError
	InvalidParameters []InvalidParameter
}

// InvalidParameter describes a single rejected request parameter.
type InvalidParameter struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	if len(e.InvalidParameters) > 0 {
		return fmt.Sprintf("nexmo: validation failed: status %d: %s (parameter %q: %s)",
			e.StatusCode, e.Title, e.InvalidParameters[0].Name, e.InvalidParameters[0].Reason)
	}
	return fmt.Sprintf("nexmo: validation failed: status %d: %s", e.StatusCode, e.Title)
}

// ServerError is the server branch: the API failed to process a well-formed
// request (5xx). These are transient by nature and are retried by the
// transport before being surfaced.
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("nexmo: server error: status %d: %s", e.StatusCode, e.Title)
}

// errorBody is the JSON error shape returned by the newer API hosts.
type errorBody struct {
	Type              string             `json:"type"`
	Title             string             `json:"title"`
	Detail            string             `json:"detail"`
	ErrorCode         string             `json:"error_code"`
	ErrorCodeLabel    string             `json:"error_code_label"`
	InvalidParameters []InvalidParameter `json:"invalid_parameters"`
}

// newStatusError maps a non-2xx response onto the error taxonomy.
func newStatusError(statusCode int, parsed errorBody, raw []byte) error {
	base := APIError{
		StatusCode: statusCode,
		Code:       parsed.ErrorCode,
		Title:      parsed.Title,
		Detail:     parsed.Detail,
		Body:       string(raw),
	}
	if base.Title == "" {
		base.Title = parsed.ErrorCodeLabel
	}
	if base.Title == "" {
		base.Title = http.StatusText(statusCode)
	}

	switch {
	case statusCode == http.StatusBadRequest && len(parsed.InvalidParameters) > 0:
		return &ValidationError{
			RequestError:      RequestError{APIError: base},
			InvalidParameters: parsed.InvalidParameters,
		}
	case statusCode >= 400 && statusCode < 500:
		return &RequestError{APIError: base}
	default:
		return &ServerError{APIError: base}
	}
}
