// Package session persists the local session marker and gates access to
// protected areas. The marker is a JSON file (usuarioLogeado.json) in the
// data directory.
package session

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/models"
)

const (
	markerFileName = "usuarioLogeado.json"
	secretFileName = "session.secret"
)

// Store reads and writes the session marker file. At most one session
// exists per running client.
type Store struct {
	path   string
	secret []byte
}

// NewStore returns a Store keeping its marker inside dataDir, signing
// tokens with secret.
func NewStore(dataDir string, secret []byte) *Store {
	return &Store{path: filepath.Join(dataDir, markerFileName), secret: secret}
}

// LoadOrCreateSecret returns the per-install signing secret, generating and
// persisting one on first use.
func LoadOrCreateSecret(dataDir string) ([]byte, error) {
	path := filepath.Join(dataDir, secretFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		secret, err := hex.DecodeString(string(data))
		if err != nil {
			return nil, fmt.Errorf("corrupt secret file %s: %w", path, err)
		}
		return secret, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read secret: %w", err)
	}

	s, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
		return nil, fmt.Errorf("write secret: %w", err)
	}
	return hex.DecodeString(s)
}

// Establish writes an authenticated marker for the given user, including a
// denormalized copy of the profile fields. Called only after the store
// operation backing a login or registration has succeeded.
func (s *Store) Establish(ctx context.Context, user *models.User) error {
	token, err := GenerateToken(user.Username, s.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	sess := &models.Session{
		Username:       user.Username,
		IsLoggedIn:     true,
		Token:          token,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		EducationLevel: user.EducationLevel,
		BirthDate:      user.BirthDate,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}
	return nil
}

// Current returns the persisted session marker. A missing marker is
// common.ErrNotFound; an unreadable or unparsable one is reported as an
// error without crashing the caller.
func (s *Store) Current(ctx context.Context) (*models.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("read session marker: %w", err)
	}

	sess := &models.Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("corrupt session marker: %w", err)
	}
	return sess, nil
}

// Clear removes the marker. Clearing an absent marker is not an error.
func (s *Store) Clear(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session marker: %w", err)
	}
	return nil
}
