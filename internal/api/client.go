// Package api implements the HTTP client for the remote puzzle service:
// authentication, puzzle-session lifecycle, task progress, and profile.
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
)

// Client talks to the remote service. Zero-value is not usable; build one
// with New.
type Client struct {
	base  *url.URL
	http  *http.Client
	token string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests, custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken preloads a bearer token, e.g. one restored from settings.
func WithToken(t string) Option {
	return func(c *Client) { c.token = t }
}

// New builds a client for the given base URL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing scheme or host", baseURL)
	}
	c := &Client{
		base: u,
		http: &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// SetToken installs the bearer token used on authenticated endpoints.
func (c *Client) SetToken(t string) { c.token = t }

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string { return c.token }

// Error is a non-2xx response decoded from the service's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// errEnvelope matches the {"error": "..."} body the service uses on failure.
type errEnvelope struct {
	Error string `json:"error,omitempty"`
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (which may be nil for ack-only endpoints). Extra
// headers are applied before auth.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, headers http.Header) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var env errEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
		return &Error{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
