package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Client provides a high-level interface to the Studely admin resources:
// students, modules, colleges, assessments, and the evaluator queue. Resource
// methods live in sibling files; this file owns the shared HTTP plumbing.
//
// A 401 from any resource call is a session-level signal, not a
// resource-specific error: the unauthorized hook runs so the session
// controller can evict, and the call still returns the unauthorized error.
type Client struct {
	baseURL        string
	httpCli        *http.Client
	logger         *slog.Logger
	onUnauthorized func()
}

// ClientOption mutates a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for resource calls. Pass an
// oauth2-wrapped client to attach the bearer token.
func WithHTTPClient(cli *http.Client) ClientOption {
	return func(c *Client) { c.httpCli = cli }
}

// WithClientLogger sets the logger for request-level diagnostics.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithUnauthorizedHook registers fn to run whenever the server rejects the
// token on a resource call. Wire it to the session controller's Evict.
func WithUnauthorizedHook(fn func()) ClientOption {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient creates a Studely API client for the server at baseURL.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpCli: http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// Meta is the server's pagination envelope.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// singlePageMeta fills in the envelope for endpoints that omit it.
func singlePageMeta(count int) Meta {
	return Meta{CurrentPage: 1, LastPage: 1, PerPage: count, Total: count}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := decodeErrorResponse(resp)
		c.logger.Debug("resource call rejected as unauthorized", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeErrorResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode %s response: %w", path, err)}
	}
	return nil
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
