package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bizreg/pkg/observability"
)

// contentTypeJSON is the request content type registry search APIs expect.
const contentTypeJSON = "application/json;charset=utf-8"

// Client provides shared HTTP functionality for all registry API clients.
// It handles common request headers, status mapping, and JSON decoding.
// Each call issues exactly one HTTP request; there is no caching or retry.
type Client struct {
	http    *http.Client
	headers map[string]string
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = NewHTTPClient(d)
		}
	}
}

// WithLogger sets the logger used for response-body debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts ...Option) *Client {
	c := &Client{
		http:    NewHTTPClient(httpTimeout),
		headers: headers,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Logger returns the client's logger.
func (c *Client) Logger() *log.Logger { return c.logger }

// PostJSON marshals payload as JSON, POSTs it to url, and decodes the
// JSON response into v. The raw response body is logged at debug level.
func (c *Client) PostJSON(ctx context.Context, url string, payload, v any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	body, err := c.doRequest(ctx, http.MethodPost, url, bytes.NewReader(data), map[string]string{
		"Content-Type": contentTypeJSON,
	})
	if err != nil {
		return err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	c.logger.Debug("response body", "url", url, "body", string(raw))

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, url string, payload io.Reader, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// checkStatus mirrors raise-for-status semantics: anything below 400 is success.
func checkStatus(code int) error {
	switch {
	case code < http.StatusBadRequest:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServer, code)
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
