package reports

import (
	"context"
	"fmt"

	"github.com/huellitas-app/huellitas/internal/dbx"
	"github.com/huellitas-app/huellitas/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, report *models.PetReport) error {
	query := `INSERT INTO reports (id, name, description, latitude, longitude, reported_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.Name, report.Description,
		report.Latitude, report.Longitude, report.ReportedBy, report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.PetReport, error) {
	query := `SELECT id, name, description, latitude, longitude, reported_by, created_at
			FROM reports ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}
	defer rows.Close()

	var result []models.PetReport
	for rows.Next() {
		var item models.PetReport
		if err := rows.Scan(&item.ID, &item.Name, &item.Description,
			&item.Latitude, &item.Longitude, &item.ReportedBy, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
