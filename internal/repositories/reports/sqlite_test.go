package reports

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:reports_tests_%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		reported_by TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func TestCreateAndGetAll(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first := &models.PetReport{
		ID:          uuid.NewString(),
		Name:        "Firulais",
		Description: "Perro cafe, collar rojo",
		Latitude:    -33.45,
		Longitude:   -70.66,
		ReportedBy:  "ana_99",
		CreatedAt:   time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
	}
	second := &models.PetReport{
		ID:          uuid.NewString(),
		Name:        "Misu",
		Description: "Gata blanca",
		Latitude:    -33.44,
		Longitude:   -70.65,
		ReportedBy:  "ana_99",
		CreatedAt:   time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, r.Create(ctx, first))
	require.NoError(t, r.Create(ctx, second))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Firulais", all[0].Name, "oldest first")
	assert.Equal(t, "Misu", all[1].Name)
	assert.Equal(t, -33.45, all[0].Latitude)
}

func TestGetAll_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
