// Package services contains the application flows of the huellitas client:
// registration, login, profile view/edit and lost-pet reports.
package services

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/models"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// at least 6 characters, one uppercase letter and one digit;
	// Go's regexp has no lookahead, so the two conditions are separate
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`\d`)
)

func validPassword(password string) bool {
	// length bounds count characters, not bytes
	return utf8.RuneCountInString(password) >= 6 &&
		upperRe.MatchString(password) && digitRe.MatchString(password)
}

func validBirthDate(birthDate string) bool {
	d, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}

// ValidateRegistration checks a candidate profile against the registration
// rules, in order:
//
//  1. first name, last name, username, email and password are non-empty
//  2. username length in [3,20], alphanumeric plus underscore
//  3. email has a local@domain.tld shape
//  4. password has >=6 chars, an uppercase letter and a digit
//  5. birth date parses and is not in the future
//
// Under config.ValidationBasic only rules 1 and 4 apply. All rejections
// wrap common.ErrValidation.
func ValidateRegistration(u *models.User, strictness string) error {
	if u.FirstName == "" || u.LastName == "" || u.Username == "" || u.Email == "" || u.Password == "" {
		return fmt.Errorf("%w: missing required fields", common.ErrValidation)
	}

	if strictness == config.ValidationFull {
		if n := utf8.RuneCountInString(u.Username); n < 3 || n > 20 {
			return fmt.Errorf("%w: username must be 3-20 characters", common.ErrValidation)
		}
		if !usernameRe.MatchString(u.Username) {
			return fmt.Errorf("%w: username may only contain letters, digits and underscores", common.ErrValidation)
		}
		if !emailRe.MatchString(u.Email) {
			return fmt.Errorf("%w: invalid email", common.ErrValidation)
		}
	}

	if !validPassword(u.Password) {
		return fmt.Errorf("%w: password needs at least 6 characters, an uppercase letter and a digit", common.ErrValidation)
	}

	if strictness == config.ValidationFull {
		if !validBirthDate(u.BirthDate) {
			return fmt.Errorf("%w: birth date is invalid or in the future", common.ErrValidation)
		}
	}

	return nil
}
