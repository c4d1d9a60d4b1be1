package models

import "time"

// Coordinates is a geographic position as returned by the geolocation
// collaborator.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PetReport is one lost-pet report, rendered as a map marker in the UI.
type PetReport struct {
	// ID is a client-generated UUID.
	ID string

	Name        string
	Description string

	Latitude  float64
	Longitude float64

	// ReportedBy is the username of the reporting user.
	ReportedBy string

	CreatedAt time.Time
}
