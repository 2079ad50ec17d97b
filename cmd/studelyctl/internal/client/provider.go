package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/auth"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// ErrNotLoggedIn is returned when a protected command runs without an
// authenticated session.
var ErrNotLoggedIn = errors.New("not logged in; run `studelyctl auth login`")

// Provider yields the credential store, the session controller, and
// authenticated resource clients, each constructed lazily and shared across
// commands. The resource client is rebuilt after an eviction so a re-login
// within the same process picks up the new token.
type Provider struct {
	serverURL      string
	device         string
	confirmTimeout time.Duration
	credentialsDir string
	logger         *slog.Logger

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	identityOnce sync.Once
	identity     *sdk.IdentityClient

	ctrlOnce sync.Once
	ctrl     *sdk.Controller

	bootstrapOnce sync.Once

	mu  sync.Mutex
	api *sdk.Client
}

// ProviderOption mutates a Provider during construction.
type ProviderOption func(*Provider)

// WithCredentialsDir overrides the credential store directory. Used by tests.
func WithCredentialsDir(dir string) ProviderOption {
	return func(p *Provider) { p.credentialsDir = dir }
}

// WithStore injects a prebuilt credential store instead of the file store.
func WithStore(store sdk.CredentialStore) ProviderOption {
	return func(p *Provider) { p.store = store }
}

// NewProvider constructs a Provider bound to the given server.
func NewProvider(serverURL, device string, confirmTimeout time.Duration, logger *slog.Logger, optFns ...ProviderOption) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if confirmTimeout <= 0 {
		confirmTimeout = sdk.DefaultConfirmTimeout
	}
	p := &Provider{
		serverURL:      serverURL,
		device:         device,
		confirmTimeout: confirmTimeout,
		logger:         logger,
	}
	for _, fn := range optFns {
		fn(p)
	}
	return p
}

// Store returns the credential store, creating the file-backed one on first
// use.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		if p.store != nil {
			return
		}
		p.store, p.storeErr = auth.NewFileStore(p.credentialsDir, p.logger)
	})
	return p.store, p.storeErr
}

// Identity returns the identity client, for flows that sit outside the
// session controller (registration).
func (p *Provider) Identity() (*sdk.IdentityClient, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	p.identityOnce.Do(func() {
		p.identity = sdk.NewIdentityClient(p.serverURL, store, sdk.WithIdentityLogger(p.logger))
	})
	return p.identity, nil
}

// Controller returns the process-wide session controller.
func (p *Provider) Controller() (*sdk.Controller, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	svc, err := p.Identity()
	if err != nil {
		return nil, err
	}
	p.ctrlOnce.Do(func() {
		p.ctrl = sdk.NewController(store, svc,
			sdk.WithConfirmTimeout(p.confirmTimeout),
			sdk.WithLogger(p.logger),
		)
	})
	return p.ctrl, nil
}

// Session bootstraps the controller on first call and returns the current
// session state. Bootstrap's server confirmation runs in the background, so
// the returned state may carry a cached identity.
func (p *Provider) Session(ctx context.Context) (sdk.State, error) {
	ctrl, err := p.Controller()
	if err != nil {
		return sdk.State{}, err
	}
	p.bootstrapOnce.Do(func() { ctrl.Bootstrap(ctx) })
	return ctrl.State(), nil
}

// API returns a resource client with the stored bearer token attached via an
// oauth2 transport, and a 401 hook wired to session eviction.
func (p *Provider) API(ctx context.Context) (*sdk.Client, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	ctrl, err := p.Controller()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.api == nil {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: store.Token(),
			TokenType:   "Bearer",
		})
		httpCli := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, http.DefaultClient), source)
		p.api = sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(httpCli),
			sdk.WithClientLogger(p.logger),
			sdk.WithUnauthorizedHook(func() {
				ctrl.Evict()
				p.Reset()
			}),
		)
	}
	return p.api, nil
}

// Reset drops the cached resource client so the next API call rebuilds it
// with the current token. Called after eviction and after login.
func (p *Provider) Reset() {
	p.mu.Lock()
	p.api = nil
	p.mu.Unlock()
}

// RequireAuth gates a protected command: it bootstraps the session, applies
// the auth gate, and returns an authenticated resource client only when the
// gate renders. A redirect decision maps to ErrNotLoggedIn.
func (p *Provider) RequireAuth(ctx context.Context, location sdk.Route) (*sdk.Client, error) {
	state, err := p.Session(ctx)
	if err != nil {
		return nil, err
	}
	if res := sdk.RequireAuth(state, location); res.Decision != sdk.DecisionRender {
		return nil, ErrNotLoggedIn
	}
	return p.API(ctx)
}
