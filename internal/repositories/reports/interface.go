package reports

import (
	"context"

	"github.com/huellitas-app/huellitas/internal/models"
)

// Repository stores lost-pet reports, shown to users as map markers.
type Repository interface {
	// Create persists a new report.
	Create(ctx context.Context, report *models.PetReport) error

	// GetAll lists all reports, oldest first.
	GetAll(ctx context.Context) ([]models.PetReport, error)
}
