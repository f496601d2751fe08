package account

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/rest"
)

// Client accesses the account namespace: balance, top-ups, and account
// settings. Account endpoints accept key/secret authentication only.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates an account client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// GetBalance retrieves the current account balance.
func (c *Client) GetBalance(ctx context.Context) (*Balance, error) {
	var balance Balance
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		URL:      c.rest.RESTHost() + "/account/get-balance",
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &balance)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	c.logger.Debug().
		Float64("balance", balance.Value).
		Msg("Retrieved account balance")

	return &balance, nil
}

// TopUp triggers a top-up against the transaction used when enabling
// auto-reload on the account.
func (c *Client) TopUp(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return ErrMissingTransaction
	}

	form := url.Values{}
	form.Set("trx", transactionID)

	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.RESTHost() + "/account/top-up",
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to top up: %w", err)
	}
	return nil
}

// UpdateSettings changes the inbound message and delivery receipt callback
// URLs. Empty arguments leave the corresponding setting untouched.
func (c *Client) UpdateSettings(ctx context.Context, inboundURL, receiptURL string) (*Settings, error) {
	form := url.Values{}
	if inboundURL != "" {
		form.Set("moCallBackUrl", inboundURL)
	}
	if receiptURL != "" {
		form.Set("drCallBackUrl", receiptURL)
	}

	var settings Settings
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.RESTHost() + "/account/settings",
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return &settings, nil
}
