package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/dbx"
	"github.com/huellitas-app/huellitas/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (nombre, apellido, usuario, email, password, nivel_educacion, fecha_nacimiento)
			VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email,
		user.Password, user.EducationLevel, user.BirthDate)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: usuario or email taken", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *SQLiteRepository) Authenticate(ctx context.Context, username, password string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE usuario = ? AND password = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, username, password).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check credentials: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, nombre, apellido, usuario, email, password, nivel_educacion, fecha_nacimiento
			FROM users WHERE usuario = ?
	`
	row := r.db.QueryRowContext(ctx, query, username)

	u := &models.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.Password, &u.EducationLevel, &u.BirthDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) (bool, error) {
	query := `UPDATE users SET
			nombre = ?,
			apellido = ?,
			email = ?,
			password = ?,
			nivel_educacion = ?,
			fecha_nacimiento = ?
		WHERE usuario = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password,
		user.EducationLevel, user.BirthDate, user.Username)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w: email taken", common.ErrAlreadyExists)
		}
		return false, fmt.Errorf("failed to update user: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}
