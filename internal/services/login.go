package services

import (
	"context"
	"fmt"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/logging"
	"github.com/huellitas-app/huellitas/internal/repositories/users"
	"github.com/huellitas-app/huellitas/internal/session"
)

// LoginService validates a credential pair against the credential store and
// on success establishes the session.
type LoginService struct {
	users    users.Repository
	sessions *session.Store
	cfg      *config.Config
	log      logging.Logger
}

func NewLoginService(repo users.Repository, sessions *session.Store, cfg *config.Config, log logging.Logger) *LoginService {
	return &LoginService{users: repo, sessions: sessions, cfg: cfg, log: log.With("component", "login")}
}

// AlreadyLoggedIn reports whether an authenticated session marker already
// exists, so callers can skip straight to the main area.
func (s *LoginService) AlreadyLoggedIn(ctx context.Context) bool {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return false
	}
	return sess.IsLoggedIn && sess.Username != ""
}

// Login checks the credential pair. Outcomes, matched with errors.Is:
//
//   - common.ErrValidation: username or password empty.
//   - common.ErrUnauthorized: invalid credentials. A wrong password and an
//     unknown username produce the same outcome.
//   - anything else: store failure.
//
// On success the session marker is authenticated for username.
func (s *LoginService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: missing credentials", common.ErrValidation)
	}

	ok, err := verifyCredentials(ctx, s.users, s.cfg.PasswordScheme, username, password)
	if err != nil {
		s.log.Error(ctx, "credential check failed", "error", err)
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.log.Error(ctx, "fetch after authenticate failed", "error", err)
		return err
	}

	if err := s.sessions.Establish(ctx, user); err != nil {
		s.log.Error(ctx, "session not established after login", "error", err)
		return err
	}

	s.log.Info(ctx, "user logged in", "usuario", username)
	return nil
}
