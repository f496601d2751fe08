package nexmo

import (
	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/account"
	"github.com/nexmo-community/nexmo-go/application"
	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/conversation"
	"github.com/nexmo-community/nexmo-go/numbers"
	"github.com/nexmo-community/nexmo-go/rest"
	"github.com/nexmo-community/nexmo-go/sms"
	"github.com/nexmo-community/nexmo-go/verify"
	"github.com/nexmo-community/nexmo-go/voice"
)

// Client is the top-level entry point. It aggregates one accessor per API
// namespace, all sharing a single pooled transport, so a program holds one
// Client for its whole lifetime. The Client is safe for concurrent use.
type Client struct {
	Account       *account.Client
	SMS           *sms.Client
	Verify        *verify.Client
	Voice         *voice.Client
	Applications  *application.Client
	Numbers       *numbers.Client
	Conversations *conversation.Client

	rest *rest.Client
}

// New creates a client from a credential set. Which namespaces are usable
// depends on the capabilities of the credentials: voice and conversations
// need an application ID and private key, the rest need an API key with a
// secret or signature secret.
func New(credentials *auth.Credentials, logger zerolog.Logger, opts ...rest.Option) (*Client, error) {
	transport, err := rest.NewClient(credentials, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		Account:       account.NewClient(transport, logger),
		SMS:           sms.NewClient(transport, logger),
		Verify:        verify.NewClient(transport, logger),
		Voice:         voice.NewClient(transport, logger),
		Applications:  application.NewClient(transport, logger),
		Numbers:       numbers.NewClient(transport, logger),
		Conversations: conversation.NewClient(transport, logger),
		rest:          transport,
	}, nil
}

// Transport exposes the shared REST transport, for callers that need to
// hit endpoints this library does not wrap.
func (c *Client) Transport() *rest.Client {
	return c.rest
}
