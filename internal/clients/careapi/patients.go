package careapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// PatientService provides CRUD and search over patient records.
type PatientService struct {
	api *Client
}

// Patients returns the patient service.
func (c *Client) Patients() *PatientService {
	return &PatientService{api: c}
}

// List retrieves a page of patients, optionally filtered by a search term.
func (s *PatientService) List(ctx context.Context, page, perPage int, search string) (*models.Page[models.Patient], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		// The patient endpoint spells its page-size parameter differently
		// from the intervention endpoint.
		params.Set("par_page", strconv.Itoa(perPage))
	}
	if search != "" {
		params.Set("recherche", search)
	}

	path := "/patients"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result models.Page[models.Patient]
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a single patient by ID.
func (s *PatientService) Get(ctx context.Context, id int) (*models.Patient, error) {
	var patient models.Patient
	if err := s.api.Get(ctx, fmt.Sprintf("/patients/%d", id), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// Create registers a new patient.
func (s *PatientService) Create(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	var created models.Patient
	if err := s.api.Post(ctx, "/patients", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing patient.
func (s *PatientService) Update(ctx context.Context, id int, p *models.Patient) (*models.Patient, error) {
	var updated models.Patient
	if err := s.api.Put(ctx, fmt.Sprintf("/patients/%d", id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a patient record.
func (s *PatientService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/patients/%d", id), nil)
}

// Search looks patients up by code via GET /patients/recherche.
func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	params := url.Values{}
	params.Set("type", "code")
	params.Set("valeur", query)

	var results []models.Patient
	if err := s.api.Get(ctx, "/patients/recherche?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Ensure PatientService implements PatientClient
var _ interfaces.PatientClient = (*PatientService)(nil)
