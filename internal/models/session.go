package models

// Session is the local session marker: at most one active instance per
// running client. It is persisted as JSON in the usuarioLogeado.json
// marker file.
type Session struct {
	// Username of the authenticated user. Must be non-empty whenever
	// IsLoggedIn is true.
	Username string `json:"usuario"`

	IsLoggedIn bool `json:"isLoggedIn"`

	// Token is an HS256 token over Username, signed with the per-install
	// secret. It carries no expiry: the session lives until logout.
	Token string `json:"token,omitempty"`

	// Denormalized profile fields captured at registration/login time.
	// Informational only; the users table stays authoritative.
	FirstName      string `json:"nombre,omitempty"`
	LastName       string `json:"apellido,omitempty"`
	Email          string `json:"email,omitempty"`
	EducationLevel string `json:"nivelEducacion,omitempty"`
	BirthDate      string `json:"fechaNacimiento,omitempty"`
}
