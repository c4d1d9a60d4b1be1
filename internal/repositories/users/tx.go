package users

import (
	"context"
	"database/sql"

	"github.com/huellitas-app/huellitas/internal/dbx"
)

// Tx runs fn against a Repository bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Tx interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}

// SQLiteTx implements Tx over a *sql.DB.
type SQLiteTx struct {
	db *sql.DB
}

func NewSQLiteTx(db *sql.DB) *SQLiteTx {
	return &SQLiteTx{db: db}
}

func (t *SQLiteTx) InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	return dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}
