package careapi

import (
	"context"
	"fmt"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// PrescriberService provides CRUD over prescribing physicians.
type PrescriberService struct {
	api *Client
}

// Prescribers returns the prescriber service.
func (c *Client) Prescribers() *PrescriberService {
	return &PrescriberService{api: c}
}

// List retrieves all prescribers.
func (s *PrescriberService) List(ctx context.Context) ([]models.Prescriber, error) {
	var results []models.Prescriber
	if err := s.api.Get(ctx, "/prescripteurs/", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Get retrieves a single prescriber by ID.
func (s *PrescriberService) Get(ctx context.Context, id int) (*models.Prescriber, error) {
	var p models.Prescriber
	if err := s.api.Get(ctx, fmt.Sprintf("/prescripteurs/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create registers a new prescriber.
func (s *PrescriberService) Create(ctx context.Context, p *models.Prescriber) (*models.Prescriber, error) {
	var created models.Prescriber
	if err := s.api.Post(ctx, "/prescripteurs/", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing prescriber.
func (s *PrescriberService) Update(ctx context.Context, id int, p *models.Prescriber) (*models.Prescriber, error) {
	var updated models.Prescriber
	if err := s.api.Put(ctx, fmt.Sprintf("/prescripteurs/%d", id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a prescriber.
func (s *PrescriberService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/prescripteurs/%d", id), nil)
}

// Ensure PrescriberService implements PrescriberClient
var _ interfaces.PrescriberClient = (*PrescriberService)(nil)
