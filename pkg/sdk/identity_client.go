package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// IdentityService performs the three session network operations. Each call
// fails with an error classified by IsUnauthorized or IsNetworkFailure, or
// succeeds with the declared payload.
type IdentityService interface {
	// Authenticate exchanges credentials for a bearer token.
	Authenticate(ctx context.Context, email, password, device string) (string, error)
	// FetchIdentity returns the identity behind the stored token.
	FetchIdentity(ctx context.Context) (*Identity, error)
	// Revoke invalidates the stored token server-side. Best effort; callers
	// must not treat its failure as fatal.
	Revoke(ctx context.Context) error
}

// IdentityClient talks to the Studely identity endpoints (/v1/login,
// /v1/user, /v1/logout) over JSON. The bearer token is read from the
// credential store on every call that needs one, so a token persisted by a
// concurrent login is picked up without reconstruction.
type IdentityClient struct {
	baseURL string
	httpCli *http.Client
	store   CredentialStore
	logger  *slog.Logger
}

var _ IdentityService = (*IdentityClient)(nil)

// IdentityClientOption mutates an IdentityClient during construction.
type IdentityClientOption func(*IdentityClient)

// WithIdentityHTTPClient overrides the HTTP client used for identity calls.
func WithIdentityHTTPClient(cli *http.Client) IdentityClientOption {
	return func(c *IdentityClient) { c.httpCli = cli }
}

// WithIdentityLogger sets the logger for non-fatal identity client events.
func WithIdentityLogger(logger *slog.Logger) IdentityClientOption {
	return func(c *IdentityClient) { c.logger = logger }
}

// NewIdentityClient creates an identity client for the API server at baseURL.
func NewIdentityClient(baseURL string, store CredentialStore, optFns ...IdentityClientOption) *IdentityClient {
	c := &IdentityClient{
		baseURL: baseURL,
		httpCli: &http.Client{Timeout: 10 * time.Second},
		store:   store,
		logger:  slog.Default(),
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// Authenticate posts credentials to /v1/login and returns the issued token.
// Bad credentials come back as an unauthorized error, rejected input as a
// ValidationError; neither persists anything.
func (c *IdentityClient) Authenticate(ctx context.Context, email, password, device string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"device":   device,
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/login", body, false, &payload); err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", &NetworkError{Err: fmt.Errorf("login response missing token")}
	}
	return payload.Token, nil
}

// FetchIdentity gets /v1/user with the stored bearer token attached.
func (c *IdentityClient) FetchIdentity(ctx context.Context) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, http.MethodGet, "/v1/user", nil, true, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// Revoke posts to /v1/logout with the stored bearer token. The response body
// is ignored beyond success/failure.
func (c *IdentityClient) Revoke(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/logout", nil, true, nil)
}

// RegisterInput is the first step of the two-step sign-up flow.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// RegisterInit submits sign-up details; the server responds by sending a
// one-time code to the address on file (delivery is the server's concern).
func (c *IdentityClient) RegisterInit(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/v1/register/init", input, false, nil)
}

// RegisterComplete confirms the sign-up with the one-time code.
func (c *IdentityClient) RegisterComplete(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "otp": code}
	return c.do(ctx, http.MethodPost, "/v1/register/complete", body, false, nil)
}

func (c *IdentityClient) do(ctx context.Context, method, path string, body any, attachToken bool, out any) error {
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

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if attachToken {
		if token := c.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Deadline and cancellation classify as transient, same as any
			// other failure to reach the server.
			return ctx.Err()
		}
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

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
