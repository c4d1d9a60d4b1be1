package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/logging"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/huellitas-app/huellitas/internal/repositories/reports"
)

// Locator provides the device's current position. Satisfied by geo.Client.
type Locator interface {
	Current(ctx context.Context) (*models.Coordinates, error)
}

// ReportsService creates and lists lost-pet reports.
type ReportsService struct {
	repo    reports.Repository
	locator Locator
	log     logging.Logger
}

func NewReportsService(repo reports.Repository, locator Locator, log logging.Logger) *ReportsService {
	return &ReportsService{repo: repo, locator: locator, log: log.With("component", "reports")}
}

// Report files a lost-pet report at pos, or at the current position when
// pos is nil. Name and description are both required.
func (s *ReportsService) Report(ctx context.Context, username, name, description string, pos *models.Coordinates) (*models.PetReport, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", common.ErrValidation)
	}

	if pos == nil {
		var err error
		pos, err = s.locator.Current(ctx)
		if err != nil {
			s.log.Error(ctx, "geolocation failed", "error", err)
			return nil, err
		}
	}

	report := &models.PetReport{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Latitude:    pos.Latitude,
		Longitude:   pos.Longitude,
		ReportedBy:  username,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		s.log.Error(ctx, "report not saved", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "report filed", "id", report.ID, "name", name)
	return report, nil
}

// List returns all reports, oldest first.
func (s *ReportsService) List(ctx context.Context) ([]models.PetReport, error) {
	return s.repo.GetAll(ctx)
}
