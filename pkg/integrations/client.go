package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/pypisearch/pkg/observability"
)

// Client provides shared HTTP functionality for package index clients.
// It applies default headers, classifies failures and reports every request
// to the registered [observability.HTTPHooks].
//
// Requests are issued exactly once; there is no retry layer.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// WithHTTPClient replaces the underlying transport client.
// It returns c so it can be chained after [NewClient].
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	if h != nil {
		c.http = h
	}
	return c
}

// GetBytes performs an HTTP GET request and returns the full response body.
//
// Errors:
//   - [ErrNetwork] for transport failures and non-2xx responses
//   - ctx.Err() is kept in the chain when the request was cancelled, so
//     errors.Is(err, context.Canceled) works for superseded requests
func (c *Client) GetBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return c.GetBytesWithHeaders(ctx, rawURL, nil)
}

// GetBytesWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetBytesWithHeaders(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := requestTarget(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: read body: %w", ErrNetwork, err)
	}
	return body, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNetwork, ErrNotFound)
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func requestTarget(u *url.URL) (host, path string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
