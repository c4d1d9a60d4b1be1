// Package models defines data models used by the huellitas client.
package models

// User is one registered person, backed by a row in the users table.
// The backing columns use Spanish names (nombre, apellido, usuario, ...)
// while the Go fields use English names.
type User struct {
	// ID is auto-assigned by the store, stable, never reused.
	ID int64

	FirstName string
	LastName  string

	// Username is unique across all records and immutable after creation.
	Username string

	// Email is unique across all records.
	Email string

	// Password is stored as submitted under the plain scheme, or as a
	// bcrypt hash under the bcrypt scheme.
	Password string

	// EducationLevel is free text.
	EducationLevel string

	// BirthDate is an ISO date string (YYYY-MM-DD).
	BirthDate string
}
