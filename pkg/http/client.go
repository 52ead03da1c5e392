package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Query holds request query parameters. Nil values and empty strings are
// omitted from the encoded URL; everything else is rendered with fmt.
type Query map[string]interface{}

// ClientOption configures Client.
type ClientOption func(*Client)

// Client is the single call wrapper every metric fetch goes through. It
// injects the API credential, applies the per-call timeout and surfaces
// failures as typed errors. It is stateless across invocations and safe
// for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
	hc      *http.Client
}

// NewClient creates a new API client. Credential presence is validated
// here; a missing key is a configuration error, not a runtime surprise.
func NewClient(baseURL, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.hc = &http.Client{}
	return c, nil
}

// GetJSON performs a GET request against path and decodes the JSON
// response into dest.
func (c *Client) GetJSON(ctx context.Context, path string, q Query, dest interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{Path: path, Err: err}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+encodeQuery(q), nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{Path: path, Timeout: c.timeout}
		}
		return &NetworkError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Path: path,
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &NetworkError{Path: path, Err: fmt.Errorf("decode json: %w", err)}
	}

	return nil
}

func encodeQuery(q Query) string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		v := q[k]
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		values.Set(k, fmt.Sprintf("%v", v))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps int) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}
