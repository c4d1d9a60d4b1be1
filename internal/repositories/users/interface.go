package users

import (
	"context"

	"github.com/huellitas-app/huellitas/internal/models"
)

// Repository is the Credential Store: CRUD over user records keyed by
// username. Implementations are backed by the local sqlite database.
type Repository interface {
	// Create inserts a new record and returns it with the assigned ID.
	// Returns common.ErrAlreadyExists when the username or email is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Authenticate reports whether exactly one row matches both username
	// and password exactly (case-sensitive, no normalization).
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// GetByUsername returns the record for username, or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Update overwrites all mutable fields of the row matching
	// user.Username. The id and username columns are never touched.
	// Returns false (and no error) when no row matches.
	Update(ctx context.Context, user *models.User) (bool, error)
}
