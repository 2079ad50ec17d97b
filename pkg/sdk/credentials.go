package sdk

import "sync"

// CredentialStore persists the bearer token and the last-known identity
// snapshot across runs. All operations are synchronous and idempotent;
// implementations must not touch the network. The token and cached identity
// are always cleared together when a session is evicted, so a stale snapshot
// can never be re-read as valid on the next bootstrap.
type CredentialStore interface {
	// Token returns the stored bearer token, or "" when absent.
	Token() string
	SetToken(token string)
	RemoveToken()

	// CachedIdentity returns the last persisted identity snapshot, or nil.
	// The snapshot is best-effort: it may be stale until confirmed.
	CachedIdentity() *Identity
	// SetCachedIdentity stores id; nil clears the snapshot.
	SetCachedIdentity(id *Identity)
}

// MemoryStore is a CredentialStore held in process memory. It backs tests
// and embedders that manage persistence themselves; the CLI uses a
// file-backed implementation.
type MemoryStore struct {
	mu       sync.Mutex
	token    string
	identity *Identity
}

var _ CredentialStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) RemoveToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *MemoryStore) CachedIdentity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

func (s *MemoryStore) SetCachedIdentity(id *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		s.identity = nil
		return
	}
	cp := *id
	s.identity = &cp
}
