package sdk

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Status is the coarse session status.
type Status int

const (
	// StatusUnauthenticated is the initial status at process start, before
	// bootstrap has even read the credential store. Starting here instead of
	// Loading avoids an extra transition for the common no-token case.
	StatusUnauthenticated Status = iota
	// StatusLoading is only entered for user-initiated blocking operations
	// (login, blocking refresh), never for background confirmation.
	StatusLoading
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Provenance records where an authenticated identity came from.
type Provenance int

const (
	ProvenanceNone Provenance = iota
	// ProvenanceCached marks the optimistic identity read from the
	// credential store at bootstrap, not yet confirmed by the server.
	ProvenanceCached
	// ProvenanceConfirmed marks an identity returned by the most recent
	// successful identity call.
	ProvenanceConfirmed
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceCached:
		return "cached"
	case ProvenanceConfirmed:
		return "confirmed"
	default:
		return "none"
	}
}

// State is the session value every consumer reads. Exactly one is live at a
// time; only the Controller mutates it.
type State struct {
	Status     Status
	Identity   *Identity
	Provenance Provenance
}

// Authenticated reports whether the session holds an identity, cached or
// confirmed.
func (s State) Authenticated() bool { return s.Status == StatusAuthenticated }

// Route is a UI-agnostic navigation target. The controller returns routes as
// post-transition instructions instead of driving navigation itself.
type Route string

const (
	// RouteLogin is where evicted and guest sessions land.
	RouteLogin Route = "/auth/login"
	// RouteHome is the default landing route after login.
	RouteHome Route = "/"
)

// DefaultConfirmTimeout bounds the background identity confirmation at
// bootstrap and refresh. A confirmation that outlives it is abandoned and
// the cached session kept.
const DefaultConfirmTimeout = 3500 * time.Millisecond

// Controller owns the session state machine: bootstrap, login, logout,
// refresh, and eviction. One instance exists per process; route gates and
// navigation read from it and never write.
//
// Failure policy: an unauthorized response is the only signal that evicts a
// session. Network failures and timeouts always leave the session as it was,
// trading freshness for availability so a flaky network cannot log anyone
// out. Every transition that ends Unauthenticated leaves the credential
// store empty.
type Controller struct {
	store          CredentialStore
	svc            IdentityService
	confirmTimeout time.Duration
	logger         *slog.Logger

	mu       sync.Mutex
	state    State
	op       uint64
	watchers map[uint64]func(State)
	nextWID  uint64
}

// ControllerOption mutates a Controller during construction.
type ControllerOption func(*Controller)

// WithConfirmTimeout overrides the bound on background identity
// confirmation.
func WithConfirmTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.confirmTimeout = d }
}

// WithLogger sets the logger for session transitions and ignored failures.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a session controller over the given store and
// identity service. The initial state is Unauthenticated until Bootstrap
// runs.
func NewController(store CredentialStore, svc IdentityService, optFns ...ControllerOption) *Controller {
	c := &Controller{
		store:          store,
		svc:            svc,
		confirmTimeout: DefaultConfirmTimeout,
		logger:         slog.Default(),
		state:          State{Status: StatusUnauthenticated},
		watchers:       map[uint64]func(State){},
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnChange registers fn to run after every state transition. The returned
// function removes the registration. Callbacks run outside the controller
// lock, in transition order.
func (c *Controller) OnChange(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextWID
	c.nextWID++
	c.watchers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// setStateLocked records the new state and returns a closure that notifies
// watchers; the caller invokes it after releasing the lock.
func (c *Controller) setStateLocked(s State) func() {
	c.state = s
	fns := make([]func(State), 0, len(c.watchers))
	for _, fn := range c.watchers {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(s)
		}
	}
}

// bumpLocked starts a new operation generation. Any continuation holding an
// older generation discards its result instead of applying it.
func (c *Controller) bumpLocked() uint64 {
	c.op++
	return c.op
}

// clearLocked empties the credential store. Paired with every transition to
// Unauthenticated.
func (c *Controller) clearLocked() {
	c.store.RemoveToken()
	c.store.SetCachedIdentity(nil)
}

// Bootstrap reconciles the locally cached session with the server. The store
// read and the optimistic transition are synchronous; confirmation runs in
// the background bounded by the confirm timeout. With no stored token the
// state settles Unauthenticated immediately and no network call is made.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.mu.Lock()
	op := c.bumpLocked()
	token := c.store.Token()
	if token == "" {
		notify := c.setStateLocked(State{Status: StatusUnauthenticated})
		c.mu.Unlock()
		notify()
		return
	}

	cached := c.store.CachedIdentity()
	if cached == nil {
		// Token without a snapshot: show a placeholder identity until the
		// confirmation lands.
		cached = &Identity{}
	}
	fallback := State{Status: StatusAuthenticated, Identity: cached, Provenance: ProvenanceCached}
	notify := c.setStateLocked(fallback)
	c.mu.Unlock()
	notify()

	// Confirmation outlives the caller's context on purpose: navigating away
	// must not cancel it, staleness is handled by the operation generation.
	go c.confirm(context.WithoutCancel(ctx), op, fallback)
}

// confirm races FetchIdentity against the confirm timeout and applies the
// outcome, unless a newer operation has started since. Unauthorized evicts;
// any other failure restores fallback.
func (c *Controller) confirm(ctx context.Context, op uint64, fallback State) {
	cctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	id, err := c.svc.FetchIdentity(cctx)

	c.mu.Lock()
	if c.op != op {
		c.mu.Unlock()
		return
	}

	var notify func()
	switch {
	case err == nil:
		c.store.SetCachedIdentity(id)
		notify = c.setStateLocked(State{Status: StatusAuthenticated, Identity: id, Provenance: ProvenanceConfirmed})
	case IsUnauthorized(err):
		c.clearLocked()
		notify = c.setStateLocked(State{Status: StatusUnauthenticated})
	default:
		// Network failure or timeout: keep the session as it was.
		notify = c.setStateLocked(fallback)
	}
	c.mu.Unlock()
	notify()

	if err != nil && !IsUnauthorized(err) {
		c.logger.Debug("identity confirmation failed, keeping cached session", "error", err)
	}
}

// Login authenticates, persists the token and confirmed identity, and
// returns the landing route. This path is user-initiated, so it blocks and
// passes through Loading; there is no timeout race. Every failure is
// returned to the caller for form-level display and leaves the session
// Unauthenticated with the store cleared.
func (c *Controller) Login(ctx context.Context, email, password, device string) (Route, error) {
	c.mu.Lock()
	op := c.bumpLocked()
	notify := c.setStateLocked(State{Status: StatusLoading})
	c.mu.Unlock()
	notify()

	token, err := c.svc.Authenticate(ctx, email, password, device)
	var id *Identity
	if err == nil {
		// The token must be in the store before FetchIdentity so the
		// identity service can attach it.
		c.mu.Lock()
		if c.op == op {
			c.store.SetToken(token)
		}
		c.mu.Unlock()
		id, err = c.svc.FetchIdentity(ctx)
	}

	c.mu.Lock()
	if c.op != op {
		c.mu.Unlock()
		return "", ErrSuperseded
	}
	if err != nil {
		c.clearLocked()
		notify = c.setStateLocked(State{Status: StatusUnauthenticated})
		c.mu.Unlock()
		notify()
		return "", err
	}

	c.store.SetCachedIdentity(id)
	notify = c.setStateLocked(State{Status: StatusAuthenticated, Identity: id, Provenance: ProvenanceConfirmed})
	c.mu.Unlock()
	notify()
	return RouteHome, nil
}

// Logout revokes the token best-effort, then unconditionally clears the
// store and settles Unauthenticated. Safe to call from any state, including
// Loading; a revoke failure is logged and ignored.
func (c *Controller) Logout(ctx context.Context) Route {
	if c.store.Token() != "" {
		if err := c.svc.Revoke(ctx); err != nil {
			c.logger.Warn("token revoke failed", "error", err)
		}
	}

	c.mu.Lock()
	c.bumpLocked()
	c.clearLocked()
	notify := c.setStateLocked(State{Status: StatusUnauthenticated})
	c.mu.Unlock()
	notify()
	return RouteLogin
}

// Refresh re-validates the session in the background with the same
// confirmation logic as bootstrap. The current state stays visible while the
// check is in flight, so an already-authenticated user sees no flicker.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	op := c.bumpLocked()
	fallback := c.state
	c.mu.Unlock()
	go c.confirm(context.WithoutCancel(ctx), op, fallback)
}

// RefreshWait is the blocking variant of Refresh: it passes through Loading
// while the confirmation is in flight and returns the settled state.
func (c *Controller) RefreshWait(ctx context.Context) State {
	c.mu.Lock()
	op := c.bumpLocked()
	fallback := c.state
	notify := c.setStateLocked(State{Status: StatusLoading})
	c.mu.Unlock()
	notify()

	c.confirm(ctx, op, fallback)
	return c.State()
}

// Evict clears the session in response to an unauthorized signal observed
// outside the controller, typically a 401 from a resource client. Eviction
// is silent: consumers see the Unauthenticated state and the returned login
// route, no error surfaces.
func (c *Controller) Evict() Route {
	c.mu.Lock()
	c.bumpLocked()
	c.clearLocked()
	notify := c.setStateLocked(State{Status: StatusUnauthenticated})
	c.mu.Unlock()
	notify()
	return RouteLogin
}
