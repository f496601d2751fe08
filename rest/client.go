package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/nexmo-community/nexmo-go/auth"
)

// API hosts for the two endpoint families.
const (
	DefaultRESTHost = "https://rest.nexmo.com"
	DefaultAPIHost  = "https://api.nexmo.com"
)

// Client is the shared HTTP transport used by every namespace client. It
// keeps a pool of open connections so subsequent calls are cheaper, applies
// the selected authentication to each request, and maps responses onto the
// error taxonomy. A single Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	credentials *auth.Credentials
	logger      zerolog.Logger
	userAgent   string
	restHost    string
	apiHost     string
	maxRetries  uint64
	retryDelay  time.Duration
}

// NewClient creates a transport for the given credentials.
func NewClient(credentials *auth.Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if credentials == nil {
		return nil, fmt.Errorf("credentials are required")
	}
	if err := credentials.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: o.timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		httpClient:  httpClient,
		credentials: credentials,
		logger:      logger,
		userAgent:   defaultUserAgent(o.appName, o.appVersion),
		restHost:    strings.TrimRight(o.restHost, "/"),
		apiHost:     strings.TrimRight(o.apiHost, "/"),
		maxRetries:  o.maxRetries,
		retryDelay:  o.retryDelay,
	}, nil
}

// Credentials exposes the credential set the transport authenticates with.
func (c *Client) Credentials() *auth.Credentials {
	return c.credentials
}

// UserAgent returns the user-agent string sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// RESTHost returns the base URL of the classic REST endpoint family.
func (c *Client) RESTHost() string {
	return c.restHost
}

// APIHost returns the base URL of the newer API endpoint family.
func (c *Client) APIHost() string {
	return c.apiHost
}

// Request describes a single API call. Exactly one of Form or Body may be
// set; Form sends application/x-www-form-urlencoded, Body sends JSON.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Form   url.Values
	Body   any

	// Accepted lists the authentication methods the endpoint allows. The
	// highest-precedence method the credentials support is applied. Empty
	// means any method.
	Accepted []auth.Method

	// BasicKeySecret applies key/secret as a Basic authorization header
	// instead of request parameters. Only meaningful when key/secret auth
	// is selected.
	BasicKeySecret bool
}

// Do performs the request, decoding a JSON response into out when out is
// non-nil. Responses with status 429 or 5xx are retried with exponential
// backoff before the error is surfaced.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method, err := c.credentials.Select(req.Accepted...)
	if err != nil {
		return err
	}

	query := cloneValues(req.Query)
	form := cloneValues(req.Form)

	var bearer string
	switch method {
	case auth.MethodJWT:
		bearer, err = c.credentials.GenerateJWT()
		if err != nil {
			return fmt.Errorf("failed to generate bearer token: %w", err)
		}
	case auth.MethodSignature:
		if form != nil {
			err = c.credentials.SignParams(form)
		} else {
			if query == nil {
				query = url.Values{}
			}
			err = c.credentials.SignParams(query)
		}
		if err != nil {
			return err
		}
	case auth.MethodKeySecret:
		if !req.BasicKeySecret {
			target := form
			if target == nil {
				if query == nil {
					query = url.Values{}
				}
				target = query
			}
			target.Set("api_key", c.credentials.APIKey)
			target.Set("api_secret", c.credentials.APISecret)
		}
	}

	body, err := c.doWithRetry(ctx, req, method, bearer, query, form)
	if err != nil {
		return err
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// doWithRetry issues the request, retrying throttled and server-side
// failures. Request bodies are rebuilt on every attempt.
func (c *Client) doWithRetry(ctx context.Context, req Request, method auth.Method, bearer string, query, form url.Values) ([]byte, error) {
	var body []byte

	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithInitialInterval(c.retryDelay)),
		c.maxRetries,
	), ctx)

	attempt := func() error {
		var err error
		body, err = c.doOnce(ctx, req, method, bearer, query, form)
		return err
	}

	err := backoff.Retry(attempt, policy)
	return body, err
}

func (c *Client) doOnce(ctx context.Context, req Request, method auth.Method, bearer string, query, form url.Values) ([]byte, error) {
	fullURL := req.URL
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	contentType := ""
	switch {
	case form != nil:
		reqBody = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to encode request body: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, reqBody)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	switch {
	case bearer != "":
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
	case method == auth.MethodKeySecret && req.BasicKeySecret:
		httpReq.SetBasicAuth(c.credentials.APIKey, c.credentials.APISecret)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var parsed errorBody
		_ = json.Unmarshal(body, &parsed)
		statusErr := newStatusError(resp.StatusCode, parsed, body)

		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Int("status", resp.StatusCode).
			Msg("API request failed")

		// Client-usage failures are final; throttling and server faults
		// are worth another attempt.
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	return body, nil
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
