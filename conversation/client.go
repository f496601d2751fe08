package conversation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/filter"
	"github.com/nexmo-community/nexmo-go/rest"
)

// defaultPageSize is the batch size used when walking the listing.
const defaultPageSize = 100

// Client manages conversations. All conversation endpoints require JWT
// authentication, and the listing is cursor-based.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates a conversation client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// Create starts a new conversation and returns its ID.
func (c *Client) Create(ctx context.Context, req CreateRequest) (string, error) {
	var resp createResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.APIHost() + "/v0.1/conversations",
		Body:     req,
		Accepted: []auth.Method{auth.MethodJWT},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}

	c.logger.Debug().Str("id", resp.ID).Msg("Created conversation")
	return resp.ID, nil
}

// Get retrieves a single conversation.
func (c *Client) Get(ctx context.Context, uuid string) (*Conversation, error) {
	if uuid == "" {
		return nil, ErrMissingUUID
	}

	var conv Conversation
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		URL:      c.rest.APIHost() + "/v0.1/conversations/" + uuid,
		Accepted: []auth.Method{auth.MethodJWT},
	}, &conv)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conv, nil
}

// Delete removes a conversation.
func (c *Client) Delete(ctx context.Context, uuid string) error {
	if uuid == "" {
		return ErrMissingUUID
	}

	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodDelete,
		URL:      c.rest.APIHost() + "/v0.1/conversations/" + uuid,
		Accepted: []auth.Method{auth.MethodJWT},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

// List retrieves all conversations in the given order, following the
// cursor the API returns until the listing is exhausted.
func (c *Client) List(ctx context.Context, dir filter.Direction) ([]Conversation, error) {
	var all []Conversation

	cursor := rest.NewCursor(func(ctx context.Context, cursor string) (string, error) {
		f := filter.New().
			SetInt("page_size", defaultPageSize).
			SetCursor(cursor, dir)

		var resp listResponse
		err := c.rest.Do(ctx, rest.Request{
			Method:   http.MethodGet,
			URL:      c.rest.APIHost() + "/v0.1/conversations",
			Query:    f.Values(),
			Accepted: []auth.Method{auth.MethodJWT},
		}, &resp)
		if err != nil {
			return "", fmt.Errorf("failed to list conversations: %w", err)
		}

		all = append(all, resp.Embedded.Conversations...)

		next, err := nextCursor(resp.Links.Next.Href)
		if err != nil {
			return "", err
		}
		if next == "" {
			return "", rest.ErrNoNextPage
		}
		return next, nil
	})

	if err := cursor.All(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(all)).
		Str("order", string(dir)).
		Msg("Retrieved conversations")

	return all, nil
}

// nextCursor extracts the cursor token from the next-page link. An empty
// href means the listing is exhausted.
func nextCursor(href string) (string, error) {
	if href == "" {
		return "", nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid next-page link %q: %w", href, err)
	}
	return u.Query().Get("cursor"), nil
}
