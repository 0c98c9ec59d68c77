package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"
)

type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore keeps sessions in a JSON file that is replaced atomically on every write.
// It is meant for single-user tools such as the CLI.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the session file location
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() (map[string]map[string]fileEntry, error) {
	sessions := make(map[string]map[string]fileEntry)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return sessions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return sessions, nil
	}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	return sessions, nil
}

func (s *FileStore) save(sessions map[string]map[string]fileEntry) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := renameio.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return "", err
	}
	entry, ok := sessions[sessionID][key]
	if !ok || !s.now().Before(entry.ExpiresAt) {
		return "", ErrNotFound
	}
	return entry.Value, nil
}

func (s *FileStore) Set(_ context.Context, sessionID, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return err
	}
	if sessions[sessionID] == nil {
		sessions[sessionID] = make(map[string]fileEntry)
	}
	sessions[sessionID][key] = fileEntry{Value: value, ExpiresAt: expiresAt(s.now(), ttl)}
	return s.save(sessions)
}

func (s *FileStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return err
	}
	entries, ok := sessions[sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(entries, key)
	}
	if len(entries) == 0 {
		delete(sessions, sessionID)
	}
	return s.save(sessions)
}

func (s *FileStore) Purge(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return 0, err
	}
	now := s.now()
	var removed int64
	for sid, entries := range sessions {
		for key, entry := range entries {
			if !now.Before(entry.ExpiresAt) {
				delete(entries, key)
				removed++
			}
		}
		if len(entries) == 0 {
			delete(sessions, sid)
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save(sessions)
}
