package careapi

import (
	"context"
	"fmt"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// UserService provides read access to backend user accounts (admin screens).
type UserService struct {
	api *Client
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{api: c}
}

// List retrieves all user accounts.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var results []models.User
	if err := s.api.Get(ctx, "/utilisateurs/", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Get retrieves a single user account by ID.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, fmt.Sprintf("/utilisateurs/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Ensure UserService implements UserClient
var _ interfaces.UserClient = (*UserService)(nil)
