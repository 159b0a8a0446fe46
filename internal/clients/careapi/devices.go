package careapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

// DeviceService provides CRUD and assignment operations over medical devices.
type DeviceService struct {
	api *Client
}

// Devices returns the device service.
func (c *Client) Devices() *DeviceService {
	return &DeviceService{api: c}
}

// List retrieves a page of devices, optionally filtered by a search term.
func (s *DeviceService) List(ctx context.Context, page, perPage int, search string) (*models.Page[models.MedicalDevice], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
	if search != "" {
		params.Set("recherche", search)
	}

	path := "/dispositifs"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result models.Page[models.MedicalDevice]
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a single device by ID.
func (s *DeviceService) Get(ctx context.Context, id int) (*models.MedicalDevice, error) {
	var device models.MedicalDevice
	if err := s.api.Get(ctx, fmt.Sprintf("/dispositifs/%d", id), &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// Create registers a new device.
func (s *DeviceService) Create(ctx context.Context, d *models.MedicalDevice) (*models.MedicalDevice, error) {
	var created models.MedicalDevice
	if err := s.api.Post(ctx, "/dispositifs", d, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an existing device.
func (s *DeviceService) Update(ctx context.Context, id int, d *models.MedicalDevice) (*models.MedicalDevice, error) {
	var updated models.MedicalDevice
	if err := s.api.Put(ctx, fmt.Sprintf("/dispositifs/%d", id), d, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a device record.
func (s *DeviceService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/dispositifs/%d", id), nil)
}

// AssignPatient places a device with a patient.
func (s *DeviceService) AssignPatient(ctx context.Context, deviceID, patientID int) error {
	body := map[string]int{"patient_id": patientID}
	return s.api.Post(ctx, fmt.Sprintf("/dispositifs/%d/associer-patient", deviceID), body, nil)
}

// UnassignPatient takes a device back from its patient.
func (s *DeviceService) UnassignPatient(ctx context.Context, deviceID int) error {
	return s.api.Post(ctx, fmt.Sprintf("/dispositifs/%d/dissocier-patient", deviceID), nil, nil)
}

// Statistics retrieves the fleet-wide device statistics.
func (s *DeviceService) Statistics(ctx context.Context) (*models.DeviceStatistics, error) {
	var stats models.DeviceStatistics
	if err := s.api.Get(ctx, "/dispositifs/statistiques", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Ensure DeviceService implements DeviceClient
var _ interfaces.DeviceClient = (*DeviceService)(nil)
