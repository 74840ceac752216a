// Package client is a typed HTTP client for the card-issuing API.
//
// Every method maps to exactly one HTTP round trip and returns the raw
// decoded response. Decoding into entities is a separate step done with the
// models package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benx421/privacy-go/models"
)

// authScheme prefixes the API key in the Authorization header
const authScheme = "api-key"

// HTTPRequestDoer performs HTTP requests. *http.Client satisfies it.
type HTTPRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn can modify an outgoing request before it is sent
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// Client holds the credentials and base URL for the API. It keeps no
// mutable state and is safe for concurrent use if the HTTPRequestDoer is.
type Client struct {
	httpClient    HTTPRequestDoer
	logger        *slog.Logger
	baseURL       string
	authorization string
	editors       []RequestEditorFn
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the transport used for every call. Timeouts and
// retries are configured there.
func WithHTTPClient(doer HTTPRequestDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithRequestEditorFn adds a function applied to every request after the
// Authorization header is set
func WithRequestEditorFn(fn RequestEditorFn) Option {
	return func(c *Client) {
		c.editors = append(c.editors, fn)
	}
}

// WithLogger sets the logger that receives one debug record per round trip
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the API at baseURL, e.g. https://sandbox.privacy.com
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		httpClient:    http.DefaultClient,
		logger:        slog.New(slog.DiscardHandler),
		baseURL:       strings.TrimRight(baseURL, "/"),
		authorization: authScheme + " " + apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Ptr returns a pointer to v, for optional parameters
func Ptr[T any](v T) *T {
	return &v
}

func valueOf[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// do performs one round trip and returns the body of a 2xx response.
// Any other status becomes an *HTTPError before the body is interpreted.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return nil, fmt.Errorf("editing request: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	c.logger.DebugContext(ctx, "api request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode/100 != 2 {
		return nil, &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       data,
		}
	}

	return data, nil
}

func (c *Client) doDocument(ctx context.Context, method, path string, query url.Values, body any) (models.Document, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	doc, err := models.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return doc, nil
}
