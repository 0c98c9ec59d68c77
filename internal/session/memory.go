package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID][key]
	if !ok || !s.now().Before(entry.expiresAt) {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.sessions[sessionID]
	if !ok {
		entries = make(map[string]memoryEntry)
		s.sessions[sessionID] = entries
	}
	entries[key] = memoryEntry{value: value, expiresAt: expiresAt(s.now(), ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(entries, key)
	}
	if len(entries) == 0 {
		delete(s.sessions, sessionID)
	}
	return nil
}

func (s *MemoryStore) Purge(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int64
	for sid, entries := range s.sessions {
		for key, entry := range entries {
			if !now.Before(entry.expiresAt) {
				delete(entries, key)
				removed++
			}
		}
		if len(entries) == 0 {
			delete(s.sessions, sid)
		}
	}
	return removed, nil
}
