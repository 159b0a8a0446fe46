package careapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// AuthService handles login, registration, profile, and logout.
type AuthService struct {
	api *Client
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return &AuthService{api: c}
}

// Login exchanges credentials for a token pair via POST /auth/connexion.
// On success both tokens and the user profile are persisted to the store.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	req := models.LoginRequest{Username: username, Password: password}

	var resp models.LoginResponse
	if err := s.api.Do(ctx, "POST", "/auth/connexion", req, &resp, WithoutAuth()); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return nil, &APIError{StatusCode: 200, Message: "login response missing tokens", Endpoint: "/auth/connexion"}
	}

	creds := models.Credentials{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	if err := interfaces.SaveCredentials(ctx, s.api.store, creds); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	if data, err := json.Marshal(resp.User); err == nil {
		if err := s.api.store.Set(ctx, interfaces.KeyUser, string(data)); err != nil {
			s.api.logger.Warn().Err(err).Msg("Failed to cache user profile")
		}
	}

	s.api.logger.Info().Str("username", resp.User.Username).Str("role", resp.User.Role).Msg("Logged in")
	return &resp.User, nil
}

// Register creates a new account via POST /auth/enregistrer.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := s.api.Do(ctx, "POST", "/auth/enregistrer", req, &user, WithoutAuth()); err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile fetches the authenticated user via GET /auth/profil and refreshes
// the cached copy.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/auth/profil", &user); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		if err := s.api.store.Set(ctx, interfaces.KeyUser, string(data)); err != nil {
			s.api.logger.Warn().Err(err).Msg("Failed to cache user profile")
		}
	}

	return &user, nil
}

// CachedUser returns the locally cached user profile without a network call,
// or nil when no session is cached.
func (s *AuthService) CachedUser(ctx context.Context) (*models.User, error) {
	raw, err := s.api.store.Get(ctx, interfaces.KeyUser)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("corrupt cached user: %w", err)
	}
	return &user, nil
}

// Logout tears the session down.
func (s *AuthService) Logout(ctx context.Context) error {
	s.api.EndSession(ctx)
	return nil
}

// Ensure AuthService implements AuthClient
var _ interfaces.AuthClient = (*AuthService)(nil)
