package models

// Acquisition types for medical devices.
const (
	AcquisitionRental           = "location"
	AcquisitionPurchaseWarranty = "achat_garantie"
	AcquisitionPurchaseExternal = "achat_externe"
	AcquisitionPurchaseOxylife  = "achat_oxylife"
)

// Device statuses.
const (
	DeviceActive      = "actif"
	DeviceMaintenance = "en_maintenance"
	DeviceRetired     = "retiré"
)

// MedicalDevice represents a piece of home-care equipment (concentrator,
// ventilator, CPAP unit, recorder) optionally assigned to a patient.
type MedicalDevice struct {
	ID              int         `json:"id"`
	PatientID       int         `json:"patient_id,omitempty"`
	Designation     string      `json:"designation"`
	Reference       string      `json:"reference"`
	SerialNumber    string      `json:"numero_serie"`
	AcquisitionType string      `json:"type_acquisition"`
	AcquisitionDate string      `json:"date_acquisition,omitempty"`
	WarrantyEnd     string      `json:"date_fin_garantie,omitempty"`
	RentalMonths    int         `json:"duree_location,omitempty"`
	RentalEnd       string      `json:"date_fin_location,omitempty"`
	Status          string      `json:"statut"`
	UnderWarranty   bool        `json:"est_sous_garantie"`
	RentalActive    bool        `json:"est_location_active"`
	Patient         *PatientRef `json:"patient,omitempty"`
}

// Assigned reports whether the device is currently placed with a patient.
func (d *MedicalDevice) Assigned() bool {
	return d.PatientID != 0
}

// DeviceStatistics is the aggregate view returned by /dispositifs/statistiques.
type DeviceStatistics struct {
	TotalDevices        int                `json:"total_dispositifs"`
	StatusBreakdown     map[string]int     `json:"repartition_statuts"`
	AcquisitionTypes    map[string]int     `json:"repartition_types_acquisition"`
	UnderWarranty       int                `json:"dispositifs_sous_garantie"`
	TopDesignations     []DesignationCount `json:"top_designations"`
	AvgPerPatient       float64            `json:"moyenne_dispositifs_par_patient"`
	PatientsWithDevices int                `json:"nb_patients_avec_dispositifs"`
}

// DesignationCount pairs a device designation with its occurrence count.
type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int    `json:"count"`
}
