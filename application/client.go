package application

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

// defaultPageSize is the page size used when walking the listing.
const defaultPageSize = 100

// Client manages API applications. Application endpoints authenticate with
// key/secret sent as a Basic authorization header.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates an application client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// Create registers a new application. The response includes the generated
// private key when no public key was supplied; it is returned exactly once.
func (c *Client) Create(ctx context.Context, app Application) (*Application, error) {
	if app.Name == "" {
		return nil, ErrMissingName
	}

	var created Application
	err := c.rest.Do(ctx, rest.Request{
		Method:         http.MethodPost,
		URL:            c.rest.APIHost() + "/v2/applications",
		Body:           app,
		Accepted:       []auth.Method{auth.MethodKeySecret},
		BasicKeySecret: true,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	c.logger.Debug().
		Str("id", created.ID).
		Str("name", created.Name).
		Msg("Created application")

	return &created, nil
}

// Get retrieves a single application.
func (c *Client) Get(ctx context.Context, id string) (*Application, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var app Application
	err := c.rest.Do(ctx, rest.Request{
		Method:         http.MethodGet,
		URL:            c.rest.APIHost() + "/v2/applications/" + id,
		Accepted:       []auth.Method{auth.MethodKeySecret},
		BasicKeySecret: true,
	}, &app)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// Update replaces an application's configuration.
func (c *Client) Update(ctx context.Context, id string, app Application) (*Application, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if app.Name == "" {
		return nil, ErrMissingName
	}

	var updated Application
	err := c.rest.Do(ctx, rest.Request{
		Method:         http.MethodPut,
		URL:            c.rest.APIHost() + "/v2/applications/" + id,
		Body:           app,
		Accepted:       []auth.Method{auth.MethodKeySecret},
		BasicKeySecret: true,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return &updated, nil
}

// Delete removes an application.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	err := c.rest.Do(ctx, rest.Request{
		Method:         http.MethodDelete,
		URL:            c.rest.APIHost() + "/v2/applications/" + id,
		Accepted:       []auth.Method{auth.MethodKeySecret},
		BasicKeySecret: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

// List retrieves every application on the account, walking all pages.
func (c *Client) List(ctx context.Context) ([]Application, error) {
	var all []Application

	paginator := rest.NewPaginator(func(ctx context.Context, page int) (bool, error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page+1))
		query.Set("page_size", strconv.Itoa(defaultPageSize))

		var resp listResponse
		err := c.rest.Do(ctx, rest.Request{
			Method:         http.MethodGet,
			URL:            c.rest.APIHost() + "/v2/applications",
			Query:          query,
			Accepted:       []auth.Method{auth.MethodKeySecret},
			BasicKeySecret: true,
		}, &resp)
		if err != nil {
			return false, fmt.Errorf("failed to list applications: %w", err)
		}

		all = append(all, resp.Embedded.Applications...)
		return resp.Page < resp.TotalPages, nil
	})

	if err := paginator.All(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(all)).Msg("Retrieved applications")
	return all, nil
}
