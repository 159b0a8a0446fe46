package models

// Credentials holds the bearer token pair issued at login.
// Both tokens are opaque to the client except for local expiry inspection.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest is the body of POST /auth/connexion.
type LoginRequest struct {
	Username string `json:"nom_utilisateur"`
	Password string `json:"mot_de_passe"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Message      string `json:"message"`
	User         User   `json:"utilisateur"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest is the body of POST /auth/enregistrer.
type RegisterRequest struct {
	Username  string `json:"nom_utilisateur"`
	Password  string `json:"mot_de_passe"`
	Email     string `json:"email"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Role      string `json:"role"`
}
