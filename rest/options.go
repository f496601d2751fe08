package rest

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	maxRetries uint64
	retryDelay time.Duration
	appName    string
	appVersion string
	restHost   string
	apiHost    string
	httpClient *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:    30 * time.Second,
		maxRetries: 2,
		retryDelay: 500 * time.Millisecond,
		restHost:   DefaultRESTHost,
		apiHost:    DefaultAPIHost,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts for throttled
// and server-side failures.
func WithMaxRetries(retries uint64) Option {
	return func(o *clientOptions) {
		o.maxRetries = retries
	}
}

// WithRetryDelay sets the initial backoff interval between retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay > 0 {
			o.retryDelay = delay
		}
	}
}

// WithAppInfo appends the calling application's name and version to the
// user-agent string. Version may be empty.
func WithAppInfo(name, version string) Option {
	return func(o *clientOptions) {
		o.appName = name
		o.appVersion = version
	}
}

// WithRESTHost overrides the classic REST endpoint host. Used in tests to
// point at a local server.
func WithRESTHost(host string) Option {
	return func(o *clientOptions) {
		o.restHost = host
	}
}

// WithAPIHost overrides the newer API endpoint host.
func WithAPIHost(host string) Option {
	return func(o *clientOptions) {
		o.apiHost = host
	}
}

// WithHTTPClient replaces the pooled HTTP client entirely.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
