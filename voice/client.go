package voice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/filter"
	"github.com/nexmo-community/nexmo-go/rest"
)

// defaultPageSize is the page size used when walking the call listing.
const defaultPageSize = 100

// Client manages calls through the voice namespace. All voice endpoints
// require JWT authentication.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates a voice client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// CreateCall starts an outbound call.
func (c *Client) CreateCall(ctx context.Context, req CreateCallRequest) (*CreateCallResponse, error) {
	if len(req.To) == 0 {
		return nil, ErrMissingDestination
	}

	var resp CreateCallResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.APIHost() + "/v1/calls",
		Body:     req,
		Accepted: []auth.Method{auth.MethodJWT},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to create call: %w", err)
	}

	c.logger.Debug().
		Str("uuid", resp.UUID).
		Str("status", resp.Status).
		Msg("Created call")

	return &resp, nil
}

// GetCall retrieves a single call record.
func (c *Client) GetCall(ctx context.Context, uuid string) (*Call, error) {
	if uuid == "" {
		return nil, ErrMissingUUID
	}

	var call Call
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		URL:      c.rest.APIHost() + "/v1/calls/" + uuid,
		Accepted: []auth.Method{auth.MethodJWT},
	}, &call)
	if err != nil {
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	return &call, nil
}

// ListCalls retrieves all call records matching the filter, walking every
// page of the listing. A nil filter lists everything.
func (c *Client) ListCalls(ctx context.Context, f *filter.Filter) ([]Call, error) {
	var all []Call

	paginator := rest.NewPaginator(func(ctx context.Context, page int) (bool, error) {
		query := url.Values{}
		if f != nil {
			query = f.Values()
		}
		query.Set("page_size", strconv.Itoa(defaultPageSize))
		query.Set("record_index", strconv.Itoa(page*defaultPageSize))

		var resp listResponse
		err := c.rest.Do(ctx, rest.Request{
			Method:   http.MethodGet,
			URL:      c.rest.APIHost() + "/v1/calls",
			Query:    query,
			Accepted: []auth.Method{auth.MethodJWT},
		}, &resp)
		if err != nil {
			return false, fmt.Errorf("failed to list calls: %w", err)
		}

		all = append(all, resp.Embedded.Calls...)
		return resp.RecordIndex+len(resp.Embedded.Calls) < resp.Count, nil
	})

	if err := paginator.All(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(all)).Msg("Retrieved calls")
	return all, nil
}

// Hangup ends an in-progress call.
func (c *Client) Hangup(ctx context.Context, uuid string) error {
	if uuid == "" {
		return ErrMissingUUID
	}

	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPut,
		URL:      c.rest.APIHost() + "/v1/calls/" + uuid,
		Body:     map[string]string{"action": "hangup"},
		Accepted: []auth.Method{auth.MethodJWT},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to hang up call: %w", err)
	}
	return nil
}
