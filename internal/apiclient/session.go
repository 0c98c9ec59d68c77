package apiclient

import (
	"context"
	"strings"
)

// Storage keys of a panel session
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRole  = "role"
)

// SessionKeys are evicted together when the API rejects the session
var SessionKeys = []string{KeyToken, KeyUser, KeyRole}

// RootPath is where the panel is sent after an auth failure
const RootPath = "/"

// Storage is the persisted client-side session storage the client reads the token from.
// Get returns "" without error for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, keys ...string) error
}

// Navigator moves the user of the panel to another location
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(ctx context.Context, path string)

// Navigate calls f(ctx, path)
func (f NavigatorFunc) Navigate(ctx context.Context, path string) {
	f(ctx, path)
}

type sessionContextKey struct{}

type sessionBinding struct {
	storage   Storage
	navigator Navigator
}

// WithSession binds a session's storage and navigator to ctx. Calls made with the
// returned context use them instead of the client defaults.
func WithSession(ctx context.Context, storage Storage, navigator Navigator) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionBinding{
		storage:   storage,
		navigator: navigator,
	})
}

// NormalizeToken strips surrounding quote characters and whitespace from a stored token
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	token = strings.Trim(token, `"'`)
	return strings.TrimSpace(token)
}
