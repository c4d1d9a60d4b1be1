package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// encodePassword prepares a plaintext password for storage under the given
// scheme. The plain scheme stores the password as submitted; the bcrypt
// scheme stores a salted hash.
func encodePassword(scheme, password string) (string, error) {
	switch scheme {
	case config.SchemeBcrypt:
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		return string(hash), nil
	default:
		return password, nil
	}
}

// verifyCredentials checks a username/password pair under the given scheme.
// An unknown username and a wrong password are indistinguishable: both
// return (false, nil).
func verifyCredentials(ctx context.Context, repo users.Repository, scheme, username, password string) (bool, error) {
	switch scheme {
	case config.SchemeBcrypt:
		user, err := repo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil, nil
	default:
		return repo.Authenticate(ctx, username, password)
	}
}
