package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultPredictTimeout bounds the prediction call.
	DefaultPredictTimeout = 20 * time.Second

	// DefaultAnalyticsTimeout bounds the analytics calls. It is shorter than
	// the prediction timeout since the panels are secondary.
	DefaultAnalyticsTimeout = 12 * time.Second
)

// Client talks to the SmartPay backend. It is stateless apart from its
// configuration and safe for concurrent use.
type Client struct {
	baseURL          string
	apiKey           string
	httpClient       *http.Client
	predictTimeout   time.Duration
	analyticsTimeout time.Duration
}

// Options configures optional client behavior.
type Options struct {
	// APIKey, when set, is attached to every request as the x-api-key header.
	APIKey string
	// PredictTimeout overrides DefaultPredictTimeout.
	PredictTimeout time.Duration
	// AnalyticsTimeout overrides DefaultAnalyticsTimeout.
	AnalyticsTimeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// NewClient creates a client for the given backend base URL.
func NewClient(baseURL string, opts *Options) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", baseURL)
	}

	if opts == nil {
		opts = &Options{}
	}

	c := &Client{
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		apiKey:           opts.APIKey,
		httpClient:       opts.HTTPClient,
		predictTimeout:   opts.PredictTimeout,
		analyticsTimeout: opts.AnalyticsTimeout,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.predictTimeout <= 0 {
		c.predictTimeout = DefaultPredictTimeout
	}
	if c.analyticsTimeout <= 0 {
		c.analyticsTimeout = DefaultAnalyticsTimeout
	}

	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds a request for path with the standard headers attached.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	return req, nil
}
