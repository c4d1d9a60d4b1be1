package services

import (
	"testing"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration_Full(t *testing.T) {
	mutate := func(fn func(u *models.User)) *models.User {
		u := validInput()
		fn(u)
		return u
	}

	tests := []struct {
		name  string
		input *models.User
		valid bool
	}{
		{"valid profile", validInput(), true},
		{"missing first name", mutate(func(u *models.User) { u.FirstName = "" }), false},
		{"missing password", mutate(func(u *models.User) { u.Password = "" }), false},
		{"username too short", mutate(func(u *models.User) { u.Username = "ab" }), false},
		{"username too long", mutate(func(u *models.User) { u.Username = "abcdefghijklmnopqrstu" }), false},
		{"username bad chars", mutate(func(u *models.User) { u.Username = "ana-99" }), false},
		{"bad email", mutate(func(u *models.User) { u.Email = "ana@example" }), false},
		{"email with space", mutate(func(u *models.User) { u.Email = "a na@example.com" }), false},
		{"password no uppercase", mutate(func(u *models.User) { u.Password = "abc123" }), false},
		{"password too short", mutate(func(u *models.User) { u.Password = "Abc" }), false},
		{"password 5 runes in more bytes", mutate(func(u *models.User) { u.Password = "A1ñéé" }), false},
		{"password 6 runes with accents", mutate(func(u *models.User) { u.Password = "A1ñééé" }), true},
		{"password ok", mutate(func(u *models.User) { u.Password = "Abcde1" }), true},
		{"birth date future", mutate(func(u *models.User) { u.BirthDate = "2999-01-01" }), false},
		{"birth date garbage", mutate(func(u *models.User) { u.BirthDate = "ayer" }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.input, config.ValidationFull)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrValidation)
			}
		})
	}
}

func TestValidateRegistration_Basic(t *testing.T) {
	// basic strictness skips username/email/birth-date shape checks
	u := validInput()
	u.Username = "a"
	u.Email = "not-an-email"
	u.BirthDate = "2999-01-01"
	require.NoError(t, ValidateRegistration(u, config.ValidationBasic))

	// but required fields and password strength still apply
	u.Password = "abc123"
	assert.ErrorIs(t, ValidateRegistration(u, config.ValidationBasic), common.ErrValidation)

	u.Password = "Abcde1"
	u.FirstName = ""
	assert.ErrorIs(t, ValidateRegistration(u, config.ValidationBasic), common.ErrValidation)
}
