package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/logging"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/huellitas-app/huellitas/internal/repositories/users"
	"github.com/huellitas-app/huellitas/internal/session"
)

// ProfileService reads and writes the current user's record via the
// session's username.
type ProfileService struct {
	users    users.Repository
	tx       users.Tx
	sessions *session.Store
	cfg      *config.Config
	log      logging.Logger
}

func NewProfileService(repo users.Repository, tx users.Tx, sessions *session.Store, cfg *config.Config, log logging.Logger) *ProfileService {
	return &ProfileService{users: repo, tx: tx, sessions: sessions, cfg: cfg, log: log.With("component", "profile")}
}

// Load fetches the record for the current session's user.
//
//   - no authenticated session: common.ErrUnauthorized
//   - session references a non-existent record: common.ErrNotFound,
//     reported as a data-integrity problem without crashing
//   - store failure: returned as-is; callers keep their previous snapshot
func (s *ProfileService) Load(ctx context.Context) (*models.User, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil || !sess.IsLoggedIn || sess.Username == "" {
		return nil, common.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, sess.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "session references a non-existent record", "usuario", sess.Username)
			return nil, fmt.Errorf("%w: session user %q has no record", common.ErrNotFound, sess.Username)
		}
		s.log.Error(ctx, "profile load failed", "error", err)
		return nil, err
	}
	return user, nil
}

// Save overwrites the mutable fields of the current user's record. The id
// and username come from the stored record, never from the edit, so they
// cannot change. The read and the update run in one transaction; last
// writer wins beyond that.
//
// A changed password is re-encoded under the configured scheme before
// being stored.
func (s *ProfileService) Save(ctx context.Context, edited *models.User) error {
	sess, err := s.sessions.Current(ctx)
	if err != nil || !sess.IsLoggedIn || sess.Username == "" {
		return common.ErrUnauthorized
	}

	err = s.tx.InTx(ctx, func(ctx context.Context, repo users.Repository) error {
		current, err := repo.GetByUsername(ctx, sess.Username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("%w: session user %q has no record", common.ErrNotFound, sess.Username)
			}
			return err
		}

		record := *edited
		record.ID = current.ID
		record.Username = current.Username

		if record.Password != current.Password {
			stored, err := encodePassword(s.cfg.PasswordScheme, record.Password)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrInternal, err)
			}
			record.Password = stored
		}

		ok, err := repo.Update(ctx, &record)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no record for %q", common.ErrNotFound, record.Username)
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "profile save failed", "error", err)
		return err
	}

	s.log.Info(ctx, "profile saved", "usuario", sess.Username)
	return nil
}

// Logout clears the session marker and returns the route to navigate to.
func (s *ProfileService) Logout(ctx context.Context) (string, error) {
	if err := s.sessions.Clear(ctx); err != nil {
		return "", err
	}
	s.log.Info(ctx, "session cleared")
	return session.LoginRoute, nil
}
