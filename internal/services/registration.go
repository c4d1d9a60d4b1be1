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

// RegistrationService validates a candidate profile, writes it to the
// credential store and on success establishes the session.
type RegistrationService struct {
	users    users.Repository
	sessions *session.Store
	cfg      *config.Config
	log      logging.Logger
}

func NewRegistrationService(repo users.Repository, sessions *session.Store, cfg *config.Config, log logging.Logger) *RegistrationService {
	return &RegistrationService{users: repo, sessions: sessions, cfg: cfg, log: log.With("component", "registration")}
}

// Register runs the full registration flow. Outcomes, matched with
// errors.Is:
//
//   - common.ErrValidation: the input fails a rule; nothing was written.
//   - common.ErrAlreadyExists: username or email already registered.
//   - anything else: generic store failure.
//
// On success the returned user carries the assigned ID and the session
// marker is authenticated. The session is written only after the insert
// succeeded.
func (s *RegistrationService) Register(ctx context.Context, input *models.User) (*models.User, error) {
	if err := ValidateRegistration(input, s.cfg.Validation); err != nil {
		return nil, err
	}

	stored, err := encodePassword(s.cfg.PasswordScheme, input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	record := *input
	record.Password = stored

	user, err := s.users.Create(ctx, &record)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.log.Warn(ctx, "registration rejected, already registered", "usuario", input.Username)
			return nil, err
		}
		s.log.Error(ctx, "registration failed", "error", err)
		return nil, err
	}

	if err := s.sessions.Establish(ctx, user); err != nil {
		s.log.Error(ctx, "session not established after registration", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "user registered", "usuario", user.Username, "id", user.ID)
	return user, nil
}
