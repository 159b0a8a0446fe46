package models

import "encoding/json"

// Treatment families an intervention can target.
const (
	TreatmentOxygen     = "OXYGENOTHERAPIE"
	TreatmentVentilator = "VENTILATION"
	TreatmentCPAP       = "PPC"
	TreatmentPolygraphy = "POLYGRAPHIE"
	TreatmentPSG        = "POLYSOMNOGRAPHIE"
)

// Intervention statuses as stored by the backend.
const (
	StatusPlanned       = "planifiee"
	StatusInProgress    = "en_cours"
	StatusDone          = "terminee"
	StatusPatientAbsent = "patient_absent"
	StatusCancelled     = "annulee"
	StatusPostponed     = "reportee"
	StatusPartial       = "partielle"
)

// InterventionStatuses lists every status in display order.
var InterventionStatuses = []string{
	StatusPlanned,
	StatusInProgress,
	StatusDone,
	StatusPatientAbsent,
	StatusCancelled,
	StatusPostponed,
	StatusPartial,
}

// DeviceSettings holds the pressure/humidity settings recorded during a visit.
type DeviceSettings struct {
	PMax    *float64 `json:"pmax"`
	PMin    *float64 `json:"pmin"`
	PRamp   *float64 `json:"pramp"`
	HU      *float64 `json:"hu"`
	RE      *float64 `json:"re"`
	Comment string   `json:"commentaire"`
}

// Intervention represents a technician field visit, planned or completed.
type Intervention struct {
	ID               int             `json:"id"`
	PatientID        int             `json:"patient_id"`
	DeviceID         int             `json:"dispositif_id"`
	TechnicianID     int             `json:"technicien_id"`
	SettingsID       int             `json:"reglage_id,omitempty"`
	Treatment        string          `json:"traitement"`
	Type             string          `json:"type_intervention"`
	PlannedDate      string          `json:"date_planifiee"`
	ActualDate       string          `json:"date_reelle,omitempty"`
	Location         string          `json:"lieu,omitempty"`
	EquipmentState   string          `json:"etat_materiel,omitempty"`
	ConcentratorType string          `json:"type_concentrateur,omitempty"`
	VentilationMode  string          `json:"mode_ventilation,omitempty"`
	MaskType         string          `json:"type_masque,omitempty"`
	Status           string          `json:"statut"`
	ActionsDone      json.RawMessage `json:"actions_effectuees,omitempty"`
	AccessoriesUsed  json.RawMessage `json:"accessoires_utilises,omitempty"`
	Photos           []string        `json:"photos,omitempty"`
	Signature        string          `json:"signature_technicien,omitempty"`
	ReportURL        string          `json:"rapport_pdf_url,omitempty"`
	Remarks          string          `json:"remarques,omitempty"`
	CancelReason     string          `json:"motif_annulation,omitempty"`
	RescheduleDate   string          `json:"date_reprogrammation,omitempty"`
	CreatedAt        string          `json:"date_creation,omitempty"`
	ModifiedAt       string          `json:"date_modification,omitempty"`
	Parameters       json.RawMessage `json:"parametres,omitempty"`
	Settings         *DeviceSettings `json:"reglage,omitempty"`
	SafetyChecks     map[string]bool `json:"verification_securite,omitempty"`
	TestsPerformed   map[string]bool `json:"tests_effectues,omitempty"`
	ConsumablesUsed  map[string]int  `json:"consommables_utilises,omitempty"`
	Preventive       bool            `json:"maintenance_preventive,omitempty"`
	NextMaintenance  string          `json:"date_prochaine_maintenance,omitempty"`
	Planned          bool            `json:"planifiee,omitempty"`
	PlannedMinutes   int             `json:"temps_prevu,omitempty"`
	ActualMinutes    int             `json:"temps_reel,omitempty"`
	TechSatisfaction int             `json:"satisfaction_technicien,omitempty"`
	Comment          string          `json:"commentaire,omitempty"`
	Patient          *PatientRef     `json:"patient,omitempty"`
	Device           *MedicalDevice  `json:"dispositif,omitempty"`
	Technician       *User           `json:"technicien,omitempty"`
}

// Open reports whether the intervention still needs field work.
func (i *Intervention) Open() bool {
	switch i.Status {
	case StatusDone, StatusCancelled:
		return false
	default:
		return true
	}
}

// StatusChange is the body of PUT /interventions/{id}/statut. CancelReason
// accompanies a cancellation; RescheduleDate is required for a postponement.
type StatusChange struct {
	Status         string `json:"statut"`
	CancelReason   string `json:"motif_annulation,omitempty"`
	RescheduleDate string `json:"date_reprogrammation,omitempty"`
}

// InterventionTypes maps each treatment family to the visit types it allows.
var InterventionTypes = map[string][]string{
	TreatmentOxygen:     {"Installation", "Réglage", "Entretien", "Remplacement", "Contrôle", "Changement de paramètres", "Ajustement masque", "Tirage de rapport"},
	TreatmentVentilator: {"Installation", "Réglage", "Entretien", "Contrôle", "Changement de paramètres", "Ajustement masque", "Tirage de rapport"},
	TreatmentCPAP:       {"Installation", "Réglage", "Remplacement", "Entretien", "Contrôle", "Changement de paramètres", "Ajustement masque", "Tirage de rapport"},
	TreatmentPolygraphy: {"Installation", "Désinstallation"},
	TreatmentPSG:        {"Installation", "Désinstallation"},
}

// ValidInterventionType reports whether the visit type is allowed for the treatment.
func ValidInterventionType(treatment, visitType string) bool {
	for _, t := range InterventionTypes[treatment] {
		if t == visitType {
			return true
		}
	}
	return false
}
