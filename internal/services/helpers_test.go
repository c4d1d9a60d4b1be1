package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/logging"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/huellitas-app/huellitas/internal/repositories/users"
	"github.com/huellitas-app/huellitas/internal/session"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func testSessions(t *testing.T) *session.Store {
	t.Helper()
	dir := t.TempDir()
	secret, err := session.LoadOrCreateSecret(dir)
	require.NoError(t, err)
	return session.NewStore(dir, secret)
}

func validInput() *models.User {
	return &models.User{
		FirstName:      "Ana",
		LastName:       "Lopez",
		Username:       "ana_99",
		Email:          "ana@example.com",
		Password:       "Abcde1",
		EducationLevel: "Bachillerato",
		BirthDate:      "2000-01-01",
	}
}

// fakeUsersRepo is a scriptable users.Repository.
type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	authOk  bool
	authErr error

	getOut *models.User
	getErr error

	updateOk  bool
	updateErr error

	created *models.User
	updated *models.User
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *u
	out.ID = 1
	return &out, nil
}

func (f *fakeUsersRepo) Authenticate(context.Context, string, string) (bool, error) {
	return f.authOk, f.authErr
}

func (f *fakeUsersRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

func (f *fakeUsersRepo) Update(_ context.Context, u *models.User) (bool, error) {
	f.updated = u
	return f.updateOk, f.updateErr
}

// fakeTx runs fn directly against the wrapped repo, with no transaction.
type fakeTx struct {
	repo users.Repository
}

func (f *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return fn(ctx, f.repo)
}

type fakeLocator struct {
	pos *models.Coordinates
	err error
}

func (f *fakeLocator) Current(context.Context) (*models.Coordinates, error) {
	return f.pos, f.err
}
