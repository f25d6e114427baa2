package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client provides a high-level interface to the Bolt dashboard API.
// All endpoints speak JSON; authenticated endpoints expect the supplied
// http.Client to attach the bearer token, and the refresh endpoint relies on
// the cookie jar carrying the ambient refresh credential.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	timeout time.Duration
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
	Timeout    time.Duration
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls. The client's
// cookie jar, if any, is preserved so the refresh cookie keeps flowing.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(log *zap.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = log
	}
}

// WithTimeout overrides the per-request timeout applied when the caller's
// context carries no deadline.
func WithTimeout(d time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = d
	}
}

// NewClient creates a Bolt SDK client for the API server at baseURL.
// An http.Client with an in-memory cookie jar is created when one is not
// supplied, so the refresh cookie set at login is transmitted on refresh
// without the application ever reading it.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		jar, _ := cookiejar.New(nil)
		opts.HTTPClient = &http.Client{Jar: jar}
	}
	if opts.HTTPClient.Jar == nil {
		jar, _ := cookiejar.New(nil)
		opts.HTTPClient.Jar = jar
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    opts.HTTPClient,
		log:     opts.Logger.Named("sdk"),
		timeout: opts.Timeout,
	}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs a JSON request against the API. A nil out skips response
// decoding. Non-2xx responses are returned as *APIError with the server's
// message when one is present.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := ensureTimeout(ctx, c.timeout)
	defer cancel()

	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", path, err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		c.log.Debug("api request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
