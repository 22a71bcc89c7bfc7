package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileStore is a file-based session store for CLI usage.
// Sessions are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based session store.
// If baseDir is empty, defaults to ~/.config/regionmap/states/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "regionmap", "states")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) sessionPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a session by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.sessionPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	if sess.IsExpired() {
		os.Remove(path)
		return nil, nil
	}
	return &sess, nil
}

// Set stores a session.
func (s *FileStore) Set(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	path := s.sessionPath(sess.ID)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.sessionPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

// Cleanup removes expired sessions.
func (s *FileStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read state dir: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil {
			continue
		}
		if !sess.ExpiresAt.IsZero() && now.After(sess.ExpiresAt) {
			os.Remove(path)
		}
	}
	return nil
}

// Path returns the base directory for state files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)

// =============================================================================
// Named CLI states
// =============================================================================

// StateStore wraps FileStore with human-chosen state names scoped to one
// map, so `click --state demo` addresses the same value map run after run.
type StateStore struct {
	store   *FileStore
	mapName string
}

// NewStateStore creates a named-state store for the given map.
// An empty baseDir uses the default config directory.
func NewStateStore(baseDir, mapName string) (*StateStore, error) {
	store, err := NewFileStore(baseDir)
	if err != nil {
		return nil, err
	}
	return &StateStore{store: store, mapName: mapName}, nil
}

func (c *StateStore) id(name string) string {
	return c.mapName + "--" + name
}

// Load retrieves the named state, or nil if it has never been saved.
func (c *StateStore) Load(ctx context.Context, name string) (*Session, error) {
	return c.store.Get(ctx, c.id(name))
}

// Save stores the session under the given name. Named states never expire.
func (c *StateStore) Save(ctx context.Context, name string, sess *Session) error {
	sess.ID = c.id(name)
	sess.ExpiresAt = time.Time{}
	return c.store.Set(ctx, sess)
}

// Remove deletes the named state.
func (c *StateStore) Remove(ctx context.Context, name string) error {
	return c.store.Delete(ctx, c.id(name))
}

// Path returns the file path backing the named state.
func (c *StateStore) Path(name string) string {
	return c.store.sessionPath(c.id(name))
}

// Names lists the saved state names for this store's map.
func (c *StateStore) Names() ([]string, error) {
	entries, err := os.ReadDir(c.store.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read state dir: %w", err)
	}

	prefix := c.mapName + "--"
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		name = strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(name, prefix) {
			names = append(names, strings.TrimPrefix(name, prefix))
		}
	}
	return names, nil
}
