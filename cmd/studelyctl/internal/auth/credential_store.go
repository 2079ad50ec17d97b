package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Arden28/studely-client/pkg/sdk"
)

const credentialsFile = "credentials.json"

// credentialsPayload is the on-disk layout. The token and the identity
// snapshot live in one file so eviction clears both in a single write.
type credentialsPayload struct {
	Token    string        `json:"token,omitempty"`
	Identity *sdk.Identity `json:"identity,omitempty"`
}

// FileStore implements sdk.CredentialStore using a JSON file under the
// user's home directory. The file is read once at construction; every
// mutation is written through synchronously. The store contract does not
// allow mutations to fail, so a write error keeps the in-memory view and
// logs a warning.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	data credentialsPayload
}

// Ensure FileStore implements sdk.CredentialStore at compile time.
var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir (defaulting to ~/.studely
// when dir is empty) and loads any existing credentials. An unreadable or
// corrupt file is treated as absent.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(home, ".studely")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &FileStore{
		path:   filepath.Join(dir, credentialsFile),
		logger: logger,
	}
	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		// First run.
	case err != nil:
		logger.Warn("credentials file unreadable, starting logged out", "path", s.path, "error", err)
	default:
		if err := json.Unmarshal(data, &s.data); err != nil {
			logger.Warn("credentials file corrupt, starting logged out", "path", s.path, "error", err)
			s.data = credentialsPayload{}
		}
	}
	return s, nil
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Token
}

func (s *FileStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Token == token {
		return
	}
	s.data.Token = token
	s.persistLocked()
}

func (s *FileStore) RemoveToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Token == "" {
		return
	}
	s.data.Token = ""
	s.persistLocked()
}

func (s *FileStore) CachedIdentity() *sdk.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Identity == nil {
		return nil
	}
	cp := *s.data.Identity
	return &cp
}

func (s *FileStore) SetCachedIdentity(id *sdk.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		if s.data.Identity == nil {
			return
		}
		s.data.Identity = nil
	} else {
		cp := *id
		s.data.Identity = &cp
	}
	s.persistLocked()
}

// persistLocked writes the current payload through to disk. An empty payload
// removes the file instead of leaving an empty JSON object behind.
func (s *FileStore) persistLocked() {
	if s.data.Token == "" && s.data.Identity == nil {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove credentials file", "path", s.path, "error", err)
		}
		return
	}
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.logger.Warn("failed to marshal credentials", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		s.logger.Warn("failed to write credentials file", "path", s.path, "error", err)
	}
}
