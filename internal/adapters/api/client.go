package api

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

	"github.com/google/uuid"

	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// DefaultTimeout bounds a single request when no http.Client is supplied
const DefaultTimeout = 15 * time.Second

// Client talks to the HyperFocus REST API. Every call is a single attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenSource
}

// Verify interface compliance at compile time
var (
	_ ports.AuthAPI         = (*Client)(nil)
	_ ports.InsightAPI      = (*Client)(nil)
	_ ports.InterruptionAPI = (*Client)(nil)
	_ ports.SessionAPI      = (*Client)(nil)
	_ ports.StatsAPI        = (*Client)(nil)
)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource sets where bearer tokens come from
func WithTokenSource(ts ports.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient creates a Client rooted at baseURL (e.g. http://localhost:8000/api/v1)
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one call; body is already encoded
type request struct {
	body        io.Reader
	contentType string
	method      string
	path        string
	query       url.Values
}

func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Error("API request failed",
			"method", r.method,
			"path", r.path,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}

	logging.Logger.Debug("API request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	return resp, nil
}

// call sends the request and decodes a 2xx JSON body into out (when non-nil)
func (c *Client) call(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", r.method, r.path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.call(ctx, request{
		body:        bytes.NewReader(data),
		contentType: "application/json",
		method:      http.MethodPost,
		path:        path,
	}, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.call(ctx, request{
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		method:      http.MethodPost,
		path:        path,
	}, out)
}
