package opensky

import (
	"net/http"
	"time"
)

const defaultBaseURL = "https://opensky-network.org/api"

const (
	// OpenSky pacing between calls to the /flights endpoints. Anonymous
	// access is rate limited far more aggressively than authenticated.
	authenticatedPacing = 2 * time.Second
	anonymousPacing     = 10 * time.Second

	maxAttempts = 4
	baseBackoff = 1500 * time.Millisecond

	maxIdleConns    = 10
	maxConnsPerHost = 5
	idleConnTimeout = 90 * time.Second
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithCredentials sets the resolved credentials to attach to requests.
func WithCredentials(creds Credentials) ClientOption {
	return func(c *Client) { c.creds = creds }
}

// WithPacing overrides the delay enforced between time windows.
func WithPacing(d time.Duration) ClientOption {
	return func(c *Client) { c.pacing = d }
}

// WithBackoff overrides the base backoff delay between retry attempts.
func WithBackoff(d time.Duration) ClientOption {
	return func(c *Client) { c.backoff = d }
}

// Client fetches flight data from the OpenSky Network API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	pacing     time.Duration
	backoff    time.Duration
}

// NewClient creates an OpenSky API client. Pacing defaults follow the
// resolved auth mode unless overridden.
func NewClient(opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:    maxIdleConns,
		MaxConnsPerHost: maxConnsPerHost,
		IdleConnTimeout: idleConnTimeout,
	}

	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		backoff: baseBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.pacing == 0 {
		if c.creds.Mode == ModeAnonymous {
			c.pacing = anonymousPacing
		} else {
			c.pacing = authenticatedPacing
		}
	}

	return c
}

// Authenticated reports whether the client carries credentials.
func (c *Client) Authenticated() bool {
	return c.creds.Mode != ModeAnonymous
}
