package careapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// InterventionService provides CRUD over field interventions.
type InterventionService struct {
	api *Client
}

// Interventions returns the intervention service.
func (c *Client) Interventions() *InterventionService {
	return &InterventionService{api: c}
}

// List retrieves interventions matching the filter. Technicians pass their
// own ID so they only see their assigned visits.
func (s *InterventionService) List(ctx context.Context, filter interfaces.InterventionFilter) (*models.Page[models.Intervention], error) {
	params := url.Values{}
	if filter.Page > 0 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(filter.PerPage))
	}
	if filter.TechnicianID > 0 {
		params.Set("technicien_id", strconv.Itoa(filter.TechnicianID))
	}
	if filter.Status != "" {
		params.Set("statut", filter.Status)
	}
	if filter.Search != "" {
		params.Set("recherche", filter.Search)
	}

	path := "/interventions"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result models.Page[models.Intervention]
	if err := s.api.Get(ctx, path, &result); err != nil {
		s.api.notifier.Error(errText(err))
		return nil, err
	}

	s.api.notifier.Success(fmt.Sprintf("%d interventions trouvées", len(result.Items)))
	return &result, nil
}

// Get retrieves a single intervention by ID.
func (s *InterventionService) Get(ctx context.Context, id int) (*models.Intervention, error) {
	var iv models.Intervention
	if err := s.api.Get(ctx, fmt.Sprintf("/interventions/%d", id), &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

// Create plans a new intervention. A missing status defaults to planned.
func (s *InterventionService) Create(ctx context.Context, iv *models.Intervention) (*models.Intervention, error) {
	if iv.Status == "" {
		iv.Status = models.StatusPlanned
	}

	var created models.Intervention
	if err := s.api.Post(ctx, "/interventions", iv, &created); err != nil {
		s.api.notifier.Error(errText(err))
		return nil, err
	}

	s.api.notifier.Success("Intervention créée avec succès")
	return &created, nil
}

// Update modifies an existing intervention (status changes, visit reports).
func (s *InterventionService) Update(ctx context.Context, id int, iv *models.Intervention) (*models.Intervention, error) {
	var updated models.Intervention
	if err := s.api.Put(ctx, fmt.Sprintf("/interventions/%d", id), iv, &updated); err != nil {
		s.api.notifier.Error(errText(err))
		return nil, err
	}

	s.api.notifier.Success("Intervention mise à jour")
	return &updated, nil
}

// UpdateStatus changes just the intervention's status via the dedicated
// endpoint. The backend stamps the actual date on completion and applies the
// reschedule date on postponement.
func (s *InterventionService) UpdateStatus(ctx context.Context, id int, change models.StatusChange) (*models.Intervention, error) {
	var updated models.Intervention
	if err := s.api.Put(ctx, fmt.Sprintf("/interventions/%d/statut", id), change, &updated); err != nil {
		s.api.notifier.Error(errText(err))
		return nil, err
	}

	s.api.notifier.Success("Statut mis à jour")
	return &updated, nil
}

// Delete removes an intervention.
func (s *InterventionService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/interventions/%d", id), nil)
}

// errText extracts the user-facing message from a client error.
func errText(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}

// Ensure InterventionService implements InterventionClient
var _ interfaces.InterventionClient = (*InterventionService)(nil)
