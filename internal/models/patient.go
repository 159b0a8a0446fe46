package models

// Patient represents a home-care patient record.
type Patient struct {
	ID             int    `json:"id"`
	Code           string `json:"code_patient,omitempty"`
	LastName       string `json:"nom"`
	FirstName      string `json:"prenom"`
	NationalID     string `json:"cin,omitempty"`
	BirthDate      string `json:"date_naissance"`
	Phone          string `json:"telephone"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"adresse,omitempty"`
	City           string `json:"ville,omitempty"`
	Insurance      string `json:"mutuelle,omitempty"`
	PrescriberName string `json:"prescripteur_nom,omitempty"`
	PrescriberID   int    `json:"prescripteur_id,omitempty"`
	TechnicianID   int    `json:"technicien_id,omitempty"`
	CreatedAt      string `json:"date_creation"`
	ModifiedAt     string `json:"date_modification,omitempty"`
}

// PatientRef is the abbreviated patient embedded in device and intervention payloads.
type PatientRef struct {
	ID        int    `json:"id"`
	Code      string `json:"code_patient"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Phone     string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Prescriber represents a prescribing physician.
type Prescriber struct {
	ID        int    `json:"id"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Specialty string `json:"specialite"`
	Phone     string `json:"telephone"`
	Email     string `json:"email"`
	CreatedAt string `json:"date_creation"`
}
