// Package models defines the data types exchanged with the Oxycare backend
package models

// User roles as returned by the backend.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technicien"
)

// Capability names the actions the UI layer gates on.
type Capability string

const (
	CapManagePatients     Capability = "manage_patients"
	CapManageDevices      Capability = "manage_devices"
	CapManageUsers        Capability = "manage_users"
	CapPlanInterventions  Capability = "plan_interventions"
	CapCloseInterventions Capability = "close_interventions"
)

// User represents a backend user account (admin or field technician).
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"nom_utilisateur"`
	Email     string `json:"email"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Role      string `json:"role"`
	CreatedAt string `json:"date_creation"` // backend dates are ISO strings without a guaranteed zone
	Active    bool   `json:"est_actif"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTechnician reports whether the user has the technician role.
func (u *User) IsTechnician() bool {
	return u.Role == RoleTechnician
}

// Can reports whether the user's role grants the given capability.
// Role gating is a flat capability check, not a hierarchy: admins manage
// the catalog and planning, technicians execute and close interventions.
func (u *User) Can(c Capability) bool {
	if !u.Active {
		return false
	}
	switch c {
	case CapManagePatients, CapManageDevices, CapManageUsers, CapPlanInterventions:
		return u.Role == RoleAdmin
	case CapCloseInterventions:
		return u.Role == RoleAdmin || u.Role == RoleTechnician
	default:
		return false
	}
}

// DisplayName returns "FirstName LastName", falling back to the username.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
