package sms

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

// Client sends SMS through the messaging namespace. Sends accept either
// signature or key/secret authentication; the transport picks the
// highest-precedence method the credentials support.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates an SMS client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// Send submits a message. Long texts are split by the API into parts; if
// any part is rejected the returned error is a *PartialError exposing both
// the accepted and rejected parts. Rejections arrive inside an HTTP 200
// response, so status codes in the body are the source of truth.
func (c *Client) Send(ctx context.Context, msg Message) (*Response, error) {
	if err := validateMessage(msg); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("from", msg.From)
	form.Set("to", msg.To)
	form.Set("text", msg.Text)
	if msg.Type != "" {
		form.Set("type", string(msg.Type))
	}
	if msg.ClientRef != "" {
		form.Set("client-ref", msg.ClientRef)
	}
	if msg.CallbackURL != "" {
		form.Set("callback", msg.CallbackURL)
	}
	if msg.TTL > 0 {
		form.Set("ttl", strconv.Itoa(msg.TTL))
	}

	var resp Response
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.RESTHost() + "/sms/json",
		Form:     form,
		Accepted: []auth.Method{auth.MethodSignature, auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	var succeeded, failed []Part
	for _, part := range resp.Messages {
		if part.Succeeded() {
			succeeded = append(succeeded, part)
		} else {
			failed = append(failed, part)
		}
	}

	c.logger.Debug().
		Str("to", msg.To).
		Int("parts", len(resp.Messages)).
		Int("failed", len(failed)).
		Msg("Sent message")

	if len(failed) > 0 {
		return &resp, newPartialError(succeeded, failed)
	}
	return &resp, nil
}

func validateMessage(msg Message) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}
	if msg.From == "" {
		return ErrMissingSender
	}
	if msg.Text == "" && msg.Type != TypeBinary {
		return ErrEmptyMessage
	}
	return nil
}
