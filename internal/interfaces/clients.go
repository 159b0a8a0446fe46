package interfaces

import (
	"context"

	"github.com/oxylife/oxycare/internal/models"
)

// CareAPI is the authenticated façade feature code talks to. Every method
// returns either decoded data or one of the careapi error types; callers
// never see raw transport errors.
type CareAPI interface {
	// Get issues an authenticated GET and decodes the response into result.
	Get(ctx context.Context, path string, result interface{}) error

	// Post issues an authenticated POST with a JSON body.
	Post(ctx context.Context, path string, body, result interface{}) error

	// Put issues an authenticated PUT with a JSON body.
	Put(ctx context.Context, path string, body, result interface{}) error

	// Delete issues an authenticated DELETE.
	Delete(ctx context.Context, path string, result interface{}) error
}

// AuthClient handles login, profile retrieval, and session lifecycle.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	CachedUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// PatientClient provides CRUD and search over patient records.
type PatientClient interface {
	List(ctx context.Context, page, perPage int, search string) (*models.Page[models.Patient], error)
	Get(ctx context.Context, id int) (*models.Patient, error)
	Create(ctx context.Context, p *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, id int, p *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]models.Patient, error)
}

// DeviceClient provides CRUD and assignment operations over medical devices.
type DeviceClient interface {
	List(ctx context.Context, page, perPage int, search string) (*models.Page[models.MedicalDevice], error)
	Get(ctx context.Context, id int) (*models.MedicalDevice, error)
	Create(ctx context.Context, d *models.MedicalDevice) (*models.MedicalDevice, error)
	Update(ctx context.Context, id int, d *models.MedicalDevice) (*models.MedicalDevice, error)
	Delete(ctx context.Context, id int) error
	AssignPatient(ctx context.Context, deviceID, patientID int) error
	UnassignPatient(ctx context.Context, deviceID int) error
	Statistics(ctx context.Context) (*models.DeviceStatistics, error)
}

// InterventionFilter narrows intervention list queries.
type InterventionFilter struct {
	TechnicianID int
	Status       string
	Search       string
	Page         int
	PerPage      int
}

// InterventionClient provides CRUD over field interventions.
type InterventionClient interface {
	List(ctx context.Context, filter InterventionFilter) (*models.Page[models.Intervention], error)
	Get(ctx context.Context, id int) (*models.Intervention, error)
	Create(ctx context.Context, iv *models.Intervention) (*models.Intervention, error)
	Update(ctx context.Context, id int, iv *models.Intervention) (*models.Intervention, error)
	UpdateStatus(ctx context.Context, id int, change models.StatusChange) (*models.Intervention, error)
	Delete(ctx context.Context, id int) error
}

// PrescriberClient provides CRUD over prescribing physicians.
type PrescriberClient interface {
	List(ctx context.Context) ([]models.Prescriber, error)
	Get(ctx context.Context, id int) (*models.Prescriber, error)
	Create(ctx context.Context, p *models.Prescriber) (*models.Prescriber, error)
	Update(ctx context.Context, id int, p *models.Prescriber) (*models.Prescriber, error)
	Delete(ctx context.Context, id int) error
}

// UserClient provides read access to backend user accounts.
type UserClient interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
}
