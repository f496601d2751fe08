package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/rest"
)

// Client runs two-factor verifications: start a verification, check the
// code the user received, and control in-flight requests.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates a verify client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// Start begins verifying a number. The returned request ID identifies the
// verification for Check, Cancel, and TriggerNext.
func (c *Client) Start(ctx context.Context, req Request) (*StartResponse, error) {
	if req.Number == "" {
		return nil, ErrMissingNumber
	}
	if req.Brand == "" {
		return nil, ErrMissingBrand
	}

	form := url.Values{}
	form.Set("number", req.Number)
	form.Set("brand", req.Brand)
	if req.SenderID != "" {
		form.Set("sender_id", req.SenderID)
	}
	if req.CodeLength > 0 {
		form.Set("code_length", strconv.Itoa(req.CodeLength))
	}
	if req.Locale != "" {
		form.Set("lg", req.Locale)
	}
	if req.PINExpiry > 0 {
		form.Set("pin_expiry", strconv.Itoa(req.PINExpiry))
	}
	if req.NextEventWait > 0 {
		form.Set("next_event_wait", strconv.Itoa(req.NextEventWait))
	}
	if req.WorkflowID > 0 {
		form.Set("workflow_id", strconv.Itoa(req.WorkflowID))
	}

	var resp StartResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.APIHost() + "/verify/json",
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to start verification: %w", err)
	}

	if err := statusError(resp.RequestID, resp.Status, resp.ErrorText); err != nil {
		return &resp, err
	}

	c.logger.Debug().
		Str("request_id", resp.RequestID).
		Str("number", req.Number).
		Msg("Started verification")

	return &resp, nil
}

// Check tests a code the user supplied against an in-flight verification.
func (c *Client) Check(ctx context.Context, requestID, code string) (*CheckResponse, error) {
	if requestID == "" {
		return nil, ErrMissingRequestID
	}

	form := url.Values{}
	form.Set("request_id", requestID)
	form.Set("code", code)

	var resp CheckResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.APIHost() + "/verify/check/json",
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to check verification: %w", err)
	}

	if err := statusError(resp.RequestID, resp.Status, resp.ErrorText); err != nil {
		return &resp, err
	}
	return &resp, nil
}

// Cancel aborts an in-flight verification.
func (c *Client) Cancel(ctx context.Context, requestID string) (*ControlResponse, error) {
	return c.control(ctx, requestID, commandCancel)
}

// TriggerNext advances an in-flight verification to its next workflow
// event immediately.
func (c *Client) TriggerNext(ctx context.Context, requestID string) (*ControlResponse, error) {
	return c.control(ctx, requestID, commandTriggerNext)
}

func (c *Client) control(ctx context.Context, requestID string, cmd controlCommand) (*ControlResponse, error) {
	if requestID == "" {
		return nil, ErrMissingRequestID
	}

	form := url.Values{}
	form.Set("request_id", requestID)
	form.Set("cmd", string(cmd))

	var resp ControlResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.APIHost() + "/verify/control/json",
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s command: %w", cmd, err)
	}

	if err := statusError(requestID, resp.Status, resp.ErrorText); err != nil {
		return &resp, err
	}
	return &resp, nil
}
