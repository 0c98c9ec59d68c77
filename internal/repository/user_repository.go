package repository

import (
	"context"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

// UserRepository defines the remote operations on users
type UserRepository interface {
	RemoteResource[models.User]
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(client *apiclient.Client) UserRepository {
	return newRemoteResource[models.User](client, UsersPath)
}

// AuthRepository defines the authentication endpoints of the society API
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authRepository struct {
	client *apiclient.Client
}

// NewAuthRepository creates a new instance of AuthRepository
func NewAuthRepository(client *apiclient.Client) AuthRepository {
	return &authRepository{client: client}
}

// Login exchanges credentials for a token with POST /auth/login
func (r *authRepository) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var result models.AuthResult
	body := map[string]string{"email": email, "password": password}
	if _, err := r.client.Post(ctx, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the user owning the current token
func (r *authRepository) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := r.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the current token upstream
func (r *authRepository) Logout(ctx context.Context) error {
	_, err := r.client.Post(ctx, "/auth/logout", nil, nil)
	return err
}
