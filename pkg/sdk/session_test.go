package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arden28/studely-client/pkg/sdk"
)

// fakeIdentityService implements sdk.IdentityService with pluggable behavior
// per call.
type fakeIdentityService struct {
	authenticateFunc func(ctx context.Context, email, password, device string) (string, error)
	fetchFunc        func(ctx context.Context) (*sdk.Identity, error)
	revokeFunc       func(ctx context.Context) error

	fetchCalls  atomic.Int32
	revokeCalls atomic.Int32
}

func (f *fakeIdentityService) Authenticate(ctx context.Context, email, password, device string) (string, error) {
	if f.authenticateFunc != nil {
		return f.authenticateFunc(ctx, email, password, device)
	}
	return "", errors.New("authenticate not configured")
}

func (f *fakeIdentityService) FetchIdentity(ctx context.Context) (*sdk.Identity, error) {
	f.fetchCalls.Add(1)
	if f.fetchFunc != nil {
		return f.fetchFunc(ctx)
	}
	return nil, errors.New("fetch not configured")
}

func (f *fakeIdentityService) Revoke(ctx context.Context) error {
	f.revokeCalls.Add(1)
	if f.revokeFunc != nil {
		return f.revokeFunc(ctx)
	}
	return nil
}

// stateRecorder captures every transition a controller publishes.
type stateRecorder struct {
	mu     sync.Mutex
	states []sdk.State
}

func (r *stateRecorder) record(s sdk.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder) statuses() []sdk.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sdk.Status, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, s.Status)
	}
	return out
}

func unauthorizedErr() error {
	return &sdk.APIError{Status: http.StatusUnauthorized, Message: "Unauthenticated."}
}

func confirmedIdentity() *sdk.Identity {
	return &sdk.Identity{ID: 7, Name: "Amina Diallo", Email: "amina@studely.test", Role: sdk.RoleCollegeAdmin}
}

func cachedIdentity() *sdk.Identity {
	return &sdk.Identity{ID: 7, Name: "A. Diallo (stale)", Email: "amina@studely.test"}
}

func TestBootstrapNoToken(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{}
	c := sdk.NewController(store, svc)

	c.Bootstrap(context.Background())

	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	// The no-token path is fully synchronous and must not hit the network.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, svc.fetchCalls.Load())
}

func TestBootstrapConfirmSuccess(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)

	c.Bootstrap(context.Background())

	// Optimistic transition is immediate.
	got := c.State()
	require.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, sdk.ProvenanceCached, got.Provenance)
	assert.Equal(t, "A. Diallo (stale)", got.Identity.Name)

	require.Eventually(t, func() bool {
		return c.State().Provenance == sdk.ProvenanceConfirmed
	}, time.Second, 5*time.Millisecond)

	got = c.State()
	assert.Equal(t, "Amina Diallo", got.Identity.Name)
	assert.Equal(t, sdk.RoleCollegeAdmin, got.Identity.Role)
	// The cached snapshot is overwritten with the confirmed one.
	require.NotNil(t, store.CachedIdentity())
	assert.Equal(t, "Amina Diallo", store.CachedIdentity().Name)
}

func TestBootstrapWithoutCachedIdentityUsesPlaceholder(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")

	block := make(chan struct{})
	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			<-block
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())

	got := c.State()
	require.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, sdk.ProvenanceCached, got.Provenance)
	require.NotNil(t, got.Identity)
	assert.Empty(t, got.Identity.Name)
	close(block)
}

func TestBootstrapUnauthorizedEvicts(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-revoked")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return nil, unauthorizedErr()
		},
	}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())

	require.Eventually(t, func() bool {
		return c.State().Status == sdk.StatusUnauthenticated
	}, time.Second, 5*time.Millisecond)

	// Token and cached identity are cleared in the same transition.
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
}

func TestBootstrapNetworkFailureKeepsCachedSession(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return nil, &sdk.NetworkError{Err: errors.New("connection refused")}
		},
	}
	c := sdk.NewController(store, svc)

	// Repeating the scenario yields the same observable state every time.
	for i := 0; i < 3; i++ {
		calls := svc.fetchCalls.Load()
		c.Bootstrap(context.Background())

		require.Eventually(t, func() bool {
			return svc.fetchCalls.Load() > calls
		}, time.Second, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)

		got := c.State()
		assert.Equal(t, sdk.StatusAuthenticated, got.Status)
		assert.Equal(t, sdk.ProvenanceCached, got.Provenance)
		assert.Equal(t, "A. Diallo (stale)", got.Identity.Name)
		assert.Equal(t, "tok-123", store.Token())
	}
}

func TestBootstrapConfirmTimeoutKeepsCachedSession(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	c := sdk.NewController(store, svc, sdk.WithConfirmTimeout(30*time.Millisecond))
	c.Bootstrap(context.Background())

	require.Eventually(t, func() bool {
		return svc.fetchCalls.Load() == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	got := c.State()
	assert.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, sdk.ProvenanceCached, got.Provenance)
	assert.Equal(t, "tok-123", store.Token())
}

func TestLoginSuccess(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{
		authenticateFunc: func(ctx context.Context, email, password, device string) (string, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "Secret1!", password)
			assert.Equal(t, "cli", device)
			return "tok-fresh", nil
		},
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)

	rec := &stateRecorder{}
	cancel := c.OnChange(rec.record)
	defer cancel()

	route, err := c.Login(context.Background(), "a@b.com", "Secret1!", "cli")
	require.NoError(t, err)
	assert.Equal(t, sdk.RouteHome, route)

	got := c.State()
	assert.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, sdk.ProvenanceConfirmed, got.Provenance)
	assert.Equal(t, sdk.RoleCollegeAdmin, got.Identity.Role)

	assert.Equal(t, "tok-fresh", store.Token())
	require.NotNil(t, store.CachedIdentity())

	assert.Equal(t, []sdk.Status{sdk.StatusLoading, sdk.StatusAuthenticated}, rec.statuses())
}

func TestLoginBadCredentials(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{
		authenticateFunc: func(ctx context.Context, email, password, device string) (string, error) {
			return "", unauthorizedErr()
		},
	}
	c := sdk.NewController(store, svc)

	route, err := c.Login(context.Background(), "a@b.com", "wrong", "cli")
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.Empty(t, route)

	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
}

func TestLoginValidationErrorIsReRaised(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{
		authenticateFunc: func(ctx context.Context, email, password, device string) (string, error) {
			return "", &sdk.ValidationError{
				Message: "The given data was invalid.",
				Fields:  map[string][]string{"email": {"The email field is required."}},
			}
		},
	}
	c := sdk.NewController(store, svc)

	_, err := c.Login(context.Background(), "", "pw", "cli")
	var verr *sdk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The email field is required.", verr.Detail())
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
}

func TestLogoutClearsEverything(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())

	route := c.Logout(context.Background())
	assert.Equal(t, sdk.RouteLogin, route)
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
	assert.Equal(t, int32(1), svc.revokeCalls.Load())
}

func TestLogoutIgnoresRevokeFailure(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")

	svc := &fakeIdentityService{
		revokeFunc: func(ctx context.Context) error {
			return &sdk.NetworkError{Err: errors.New("server unreachable")}
		},
	}
	c := sdk.NewController(store, svc)

	route := c.Logout(context.Background())
	assert.Equal(t, sdk.RouteLogin, route)
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
}

func TestLogoutIsIdempotentFromAnyState(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{}
	c := sdk.NewController(store, svc)

	// Logout before any bootstrap, twice.
	c.Logout(context.Background())
	c.Logout(context.Background())
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	// No token was ever stored, so revoke is never attempted.
	assert.Zero(t, svc.revokeCalls.Load())
}

func TestLogoutDuringLoginWins(t *testing.T) {
	store := sdk.NewMemoryStore()

	authStarted := make(chan struct{})
	release := make(chan struct{})
	svc := &fakeIdentityService{
		authenticateFunc: func(ctx context.Context, email, password, device string) (string, error) {
			close(authStarted)
			<-release
			return "tok-late", nil
		},
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)

	type loginResult struct {
		route sdk.Route
		err   error
	}
	done := make(chan loginResult, 1)
	go func() {
		route, err := c.Login(context.Background(), "a@b.com", "Secret1!", "cli")
		done <- loginResult{route, err}
	}()

	<-authStarted
	c.Logout(context.Background())
	close(release)

	res := <-done
	require.ErrorIs(t, res.err, sdk.ErrSuperseded)
	assert.Empty(t, res.route)
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
}

func TestRefreshStalenessGuard(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			close(fetchStarted)
			<-release
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)
	c.Refresh(context.Background())

	<-fetchStarted
	// Logout completes while the refresh result is still in flight.
	c.Logout(context.Background())
	require.Equal(t, sdk.StatusUnauthenticated, c.State().Status)

	// The late refresh result must not resurrect the cleared session.
	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
}

func TestBackgroundRefreshDoesNotPassThroughLoading(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())
	require.Eventually(t, func() bool {
		return c.State().Provenance == sdk.ProvenanceConfirmed
	}, time.Second, 5*time.Millisecond)

	rec := &stateRecorder{}
	cancel := c.OnChange(rec.record)
	defer cancel()

	c.Refresh(context.Background())
	require.Eventually(t, func() bool {
		return len(rec.statuses()) > 0
	}, time.Second, 5*time.Millisecond)

	assert.NotContains(t, rec.statuses(), sdk.StatusLoading)
}

func TestRefreshWaitPassesThroughLoading(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())

	rec := &stateRecorder{}
	cancel := c.OnChange(rec.record)
	defer cancel()

	got := c.RefreshWait(context.Background())
	assert.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, sdk.ProvenanceConfirmed, got.Provenance)
	assert.Contains(t, rec.statuses(), sdk.StatusLoading)
}

func TestRefreshWaitNetworkFailureRestoresPriorState(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	var failing atomic.Bool
	failing.Store(true)
	svc := &fakeIdentityService{
		fetchFunc: func(ctx context.Context) (*sdk.Identity, error) {
			if failing.Load() {
				return nil, &sdk.NetworkError{Err: errors.New("dns failure")}
			}
			return confirmedIdentity(), nil
		},
	}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())
	time.Sleep(20 * time.Millisecond)

	got := c.RefreshWait(context.Background())
	assert.Equal(t, sdk.StatusAuthenticated, got.Status)
	assert.Equal(t, "tok-123", store.Token())

	failing.Store(false)
	got = c.RefreshWait(context.Background())
	assert.Equal(t, sdk.ProvenanceConfirmed, got.Provenance)
}

func TestEvict(t *testing.T) {
	store := sdk.NewMemoryStore()
	store.SetToken("tok-123")
	store.SetCachedIdentity(cachedIdentity())

	svc := &fakeIdentityService{}
	c := sdk.NewController(store, svc)
	c.Bootstrap(context.Background())

	route := c.Evict()
	assert.Equal(t, sdk.RouteLogin, route)
	assert.Equal(t, sdk.StatusUnauthenticated, c.State().Status)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
}

func TestOnChangeCancel(t *testing.T) {
	store := sdk.NewMemoryStore()
	svc := &fakeIdentityService{}
	c := sdk.NewController(store, svc)

	rec := &stateRecorder{}
	cancel := c.OnChange(rec.record)
	c.Evict()
	require.Len(t, rec.statuses(), 1)

	cancel()
	c.Evict()
	assert.Len(t, rec.statuses(), 1)
}
