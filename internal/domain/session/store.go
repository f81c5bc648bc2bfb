package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the bearer token of the current session. The empty string means
// logged out.
type Store interface {
	Token() string
	SetToken(token string) error
	IsLogged() bool
	Logout() error
}

// FileStore persists the token to a single file, the CLI equivalent of the
// browser's local-storage key.
type FileStore struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewFileStore loads the persisted token, if any. A missing file is a normal
// logged-out state, not an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists immediately; the in-memory value only changes when the
// write succeeds.
func (s *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *FileStore) IsLogged() bool {
	return s.Token() != ""
}

func (s *FileStore) Logout() error {
	return s.SetToken("")
}

// MemoryStore is the in-process variant used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) IsLogged() bool {
	return s.Token() != ""
}

func (s *MemoryStore) Logout() error {
	return s.SetToken("")
}
