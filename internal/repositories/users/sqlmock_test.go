package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLiteRepository(db), mock, db
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(nombre,\s*apellido,\s*usuario,\s*email,\s*password,\s*nivel_educacion,\s*fecha_nacimiento\)`

	mock.ExpectExec(q).
		WithArgs("Ana", "Lopez", "ana_99", "ana@example.com", "Abcde1", "Bachillerato", "2000-01-01").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), ana())
	if err == nil || !regexp.MustCompile(`failed to insert user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestAuthenticate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users\s+WHERE\s+usuario\s*=\s*\?\s+AND\s+password\s*=\s*\?$`

	mock.ExpectQuery(q).
		WithArgs("ana_99", "Abcde1").
		WillReturnError(errors.New("db down"))

	_, err := repo.Authenticate(context.Background(), "ana_99", "Abcde1")
	if err == nil || !regexp.MustCompile(`failed to check credentials: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*nombre,\s*apellido,\s*usuario,\s*email,\s*password,\s*nivel_educacion,\s*fecha_nacimiento\s+FROM\s+users\s+WHERE\s+usuario\s*=\s*\?`

	mock.ExpectQuery(q).
		WithArgs("ana_99").
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByUsername(context.Background(), "ana_99")
	if err == nil || !regexp.MustCompile(`failed to select user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := ana()
	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET`).
		WithArgs(u.FirstName, u.LastName, u.Email, u.Password, u.EducationLevel, u.BirthDate, u.Username).
		WillReturnError(errors.New("db down"))

	_, err := repo.Update(context.Background(), u)
	if err == nil || !regexp.MustCompile(`failed to update user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
