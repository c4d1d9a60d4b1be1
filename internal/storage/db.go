// Package storage opens the local sqlite database, applies migrations and
// wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/migrations"
	"github.com/huellitas-app/huellitas/internal/repositories/reports"
	"github.com/huellitas-app/huellitas/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Users   users.Repository
	UsersTx users.Tx
	Reports reports.Repository
	DB      *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn,
// applies migrations and returns the repository set. Safe to call once per
// process start. Open or migration failures are reported as
// common.ErrStorageUnavailable.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	repos := &Repositories{
		Users:   users.NewSQLiteRepository(db),
		UsersTx: users.NewSQLiteTx(db),
		Reports: reports.NewSQLiteRepository(db),
		DB:      db,
	}
	return repos, nil
}
