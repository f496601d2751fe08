package numbers

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

// pageSize is the maximum the listing endpoints accept.
const pageSize = 100

// Client manages the account's phone number inventory.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates a numbers client on the shared transport.
func NewClient(transport *rest.Client, logger zerolog.Logger) *Client {
	return &Client{rest: transport, logger: logger}
}

// ListOwned retrieves all numbers on the account matching the filter,
// walking every page. Useful filter keys are "pattern" and
// "search_pattern". A nil filter lists everything.
func (c *Client) ListOwned(ctx context.Context, f *filter.Filter) ([]Number, error) {
	var all []Number

	paginator := rest.NewPaginator(func(ctx context.Context, page int) (bool, error) {
		query := url.Values{}
		if f != nil {
			query = f.Values()
		}
		query.Set("index", strconv.Itoa(page+1))
		query.Set("size", strconv.Itoa(pageSize))

		var resp listResponse
		err := c.rest.Do(ctx, rest.Request{
			Method:   http.MethodGet,
			URL:      c.rest.RESTHost() + "/account/numbers",
			Query:    query,
			Accepted: []auth.Method{auth.MethodKeySecret},
		}, &resp)
		if err != nil {
			return false, fmt.Errorf("failed to list numbers: %w", err)
		}

		all = append(all, resp.Numbers...)
		return len(all) < resp.Count && len(resp.Numbers) > 0, nil
	})

	if err := paginator.All(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(all)).Msg("Retrieved owned numbers")
	return all, nil
}

// Search finds numbers available for purchase in a country. Useful filter
// keys are "pattern", "search_pattern", "type", and "features". A nil
// filter returns any available number.
func (c *Client) Search(ctx context.Context, country string, f *filter.Filter) ([]AvailableNumber, error) {
	if country == "" {
		return nil, ErrMissingCountry
	}

	query := url.Values{}
	if f != nil {
		query = f.Values()
	}
	query.Set("country", country)
	query.Set("size", strconv.Itoa(pageSize))

	var resp searchResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		URL:      c.rest.RESTHost() + "/number/search",
		Query:    query,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to search numbers: %w", err)
	}

	c.logger.Debug().
		Str("country", country).
		Int("count", len(resp.Numbers)).
		Msg("Searched available numbers")

	return resp.Numbers, nil
}

// Buy purchases an available number.
func (c *Client) Buy(ctx context.Context, country, msisdn string) error {
	return c.order(ctx, "/number/buy", country, msisdn)
}

// Cancel releases an owned number.
func (c *Client) Cancel(ctx context.Context, country, msisdn string) error {
	return c.order(ctx, "/number/cancel", country, msisdn)
}

func (c *Client) order(ctx context.Context, endpoint, country, msisdn string) error {
	if country == "" {
		return ErrMissingCountry
	}
	if msisdn == "" {
		return ErrMissingMSISDN
	}

	form := url.Values{}
	form.Set("country", country)
	form.Set("msisdn", msisdn)

	var resp orderResponse
	err := c.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		URL:      c.rest.RESTHost() + endpoint,
		Form:     form,
		Accepted: []auth.Method{auth.MethodKeySecret},
	}, &resp)
	if err != nil {
		return fmt.Errorf("number order failed: %w", err)
	}

	// Success is reported in the body, not the HTTP status.
	if resp.ErrorCode != "" && resp.ErrorCode != orderStatusOK {
		return &OrderError{MSISDN: msisdn, Code: resp.ErrorCode, CodeLabel: resp.ErrorCodeLabel}
	}
	return nil
}
