package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session key is missing or expired
var ErrNotFound = errors.New("session key not found")

// DefaultTTL is applied when a key is stored without a positive ttl
const DefaultTTL = 24 * time.Hour

// Store persists the keys of panel sessions
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
	// Purge removes expired entries and returns how many were removed
	Purge(ctx context.Context) (int64, error)
}

func expiresAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return now.Add(ttl)
}

// Scoped binds a Store to one session. It satisfies apiclient.Storage.
type Scoped struct {
	store     Store
	sessionID string
	ttl       time.Duration
}

// Bind returns the storage of one session
func Bind(store Store, sessionID string, ttl time.Duration) *Scoped {
	return &Scoped{store: store, sessionID: sessionID, ttl: ttl}
}

// SessionID returns the bound session id
func (s *Scoped) SessionID() string {
	return s.sessionID
}

// Get returns the value of key, or "" when it is not set
func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, s.sessionID, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}

// Set stores key with the scope's ttl
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.sessionID, key, value, s.ttl)
}

// SetWithTTL stores key with an explicit ttl
func (s *Scoped) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.store.Set(ctx, s.sessionID, key, value, ttl)
}

// Remove deletes keys from the session
func (s *Scoped) Remove(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, s.sessionID, keys...)
}
