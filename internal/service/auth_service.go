package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// SessionStorage is the per-session key/value storage the auth flow writes to
type SessionStorage interface {
	apiclient.Storage
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}

// LoginRequest holds the panel login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"admin@society.in"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"secret123"`
}

// AuthService defines the session lifecycle of the panel
type AuthService interface {
	Login(ctx context.Context, storage SessionStorage, req *LoginRequest) (*models.User, error)
	Logout(ctx context.Context, storage SessionStorage) error
	CurrentUser(ctx context.Context, storage SessionStorage) (*models.User, error)
	Me(ctx context.Context, storage SessionStorage) (*models.User, error)
}

type authService struct {
	authRepo   repository.AuthRepository
	defaultTTL time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

// NewAuthService creates a new auth service. defaultTTL is used when the token carries no exp claim.
func NewAuthService(authRepo repository.AuthRepository, defaultTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		authRepo:   authRepo,
		defaultTTL: defaultTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Login authenticates against the API and stores token, user and role in the session
func (s *authService) Login(ctx context.Context, storage SessionStorage, req *LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	result, err := s.authRepo.Login(ctx, email, req.Password)
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Warn("Login failed")
		return nil, err
	}

	token := apiclient.NormalizeToken(result.Token)
	if token == "" {
		return nil, &apiclient.APIError{Message: "Login response did not include a token", Status: 502}
	}

	claims := s.readClaims(token)
	ttl := s.ttlFor(claims)

	role := result.User.Role
	if role == "" {
		role = claims.Role
	}
	result.User.Role = role

	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	entries := []struct{ key, value string }{
		{apiclient.KeyToken, token},
		{apiclient.KeyUser, string(userJSON)},
		{apiclient.KeyRole, role},
	}
	for _, entry := range entries {
		if err := storage.SetWithTTL(ctx, entry.key, entry.value, ttl); err != nil {
			return nil, fmt.Errorf("failed to store session %s: %w", entry.key, err)
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": result.User.ID,
		"role":    role,
		"ttl":     ttl.String(),
	}).Info("User logged in")
	return &result.User, nil
}

// Logout notifies the API and clears every session key. The upstream call is best effort.
func (s *authService) Logout(ctx context.Context, storage SessionStorage) error {
	if token, _ := storage.Get(ctx, apiclient.KeyToken); token != "" {
		if err := s.authRepo.Logout(ctx); err != nil && !apiclient.IsAuthFailure(err) {
			s.logger.WithError(err).Warn("Upstream logout failed")
		}
	}

	if err := storage.Remove(ctx, apiclient.SessionKeys...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the user cached at login
func (s *authService) CurrentUser(ctx context.Context, storage SessionStorage) (*models.User, error) {
	token, err := storage.Get(ctx, apiclient.KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	raw, err := storage.Get(ctx, apiclient.KeyUser)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrNotAuthenticated
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	if role, _ := storage.Get(ctx, apiclient.KeyRole); role != "" {
		user.Role = role
	}
	return &user, nil
}

// Me refreshes the cached user from the API
func (s *authService) Me(ctx context.Context, storage SessionStorage) (*models.User, error) {
	if _, err := s.CurrentUser(ctx, storage); err != nil {
		return nil, err
	}

	user, err := s.authRepo.Me(ctx)
	if err != nil {
		return nil, err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	ttl := s.ttlFor(s.readClaims(s.storedToken(ctx, storage)))
	if err := storage.SetWithTTL(ctx, apiclient.KeyUser, string(userJSON), ttl); err != nil {
		return nil, fmt.Errorf("failed to store session user: %w", err)
	}
	if user.Role != "" {
		if err := storage.SetWithTTL(ctx, apiclient.KeyRole, user.Role, ttl); err != nil {
			return nil, fmt.Errorf("failed to store session role: %w", err)
		}
	}
	return user, nil
}

// tokenClaims are the claims the panel reads from the API token. The signature is
// not verified here; the API does that on every request.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (s *authService) readClaims(token string) *tokenClaims {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.logger.WithError(err).Debug("Token is not a readable JWT, using default session ttl")
		return &tokenClaims{}
	}
	return claims
}

func (s *authService) ttlFor(claims *tokenClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return s.defaultTTL
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.defaultTTL
	}
	return ttl
}

func (s *authService) storedToken(ctx context.Context, storage SessionStorage) string {
	token, err := storage.Get(ctx, apiclient.KeyToken)
	if err != nil {
		return ""
	}
	return apiclient.NormalizeToken(token)
}

// IsNotAuthenticated reports whether err means the session has no user
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}
