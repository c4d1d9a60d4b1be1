package cli

import (
	"context"
	"errors"
	"os"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// Register prompts for the seven profile fields and attempts to create a
// new account. On success the session is established and the user lands in
// the main area.
func (a *App) Register(ctx context.Context) error {
	input := &models.User{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter first name", &input.FirstName},
		{"Enter last name", &input.LastName},
		{"Enter username", &input.Username},
		{"Enter email", &input.Email},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	input.Password = string(password)

	input.EducationLevel, err = getSimpleText(a.reader, "Enter education level", os.Stdout)
	if err != nil {
		return err
	}
	input.BirthDate, err = getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.registration.Register(ctx, input); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			printlnFn("Invalid input:", err.Error())
		case errors.Is(err, common.ErrAlreadyExists):
			printlnFn("Username or email already registered. Try different ones.")
		default:
			printlnFn("Could not register. Please try again.")
		}
		return err
	}

	printlnFn("Success! You are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. A wrong
// password and an unknown username produce the same message. If a session
// already exists, the user is sent straight to the main area.
func (a *App) Login(ctx context.Context) error {
	if a.loginService.AlreadyLoggedIn(ctx) {
		printlnFn("Already logged in, continuing to the main area...")
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.loginService.Login(ctx, username, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			printlnFn("Please enter your username and password.")
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Invalid username or password.")
		default:
			printlnFn("There was a problem logging in. Please try again.")
		}
		return err
	}

	printlnFn("Login successful, continuing to the main area...")
	return nil
}

// Logout asks for confirmation, clears the session and reports where the
// user was sent.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	if !getConfirm(a.reader, "Are you sure you want to log out?", os.Stdout) {
		return errAborted
	}

	route, err := a.profile.Logout(ctx)
	if err != nil {
		printlnFn("Could not close the session:", err.Error())
		return err
	}
	a.snapshot = nil

	printlnFn("Session closed, redirecting to " + route + "...")
	return nil
}
