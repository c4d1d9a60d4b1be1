package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/huellitas-app/huellitas/internal/common"
)

// ShowProfile loads and prints the current user's record. On a store error
// the previously shown snapshot is kept.
func (a *App) ShowProfile(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	user, err := a.profile.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Data problem: your session references a profile that no longer exists.")
			return err
		}
		printlnFn("Could not load your profile.")
		if a.snapshot != nil {
			printlnFn("Showing the last known data:")
			a.printProfile()
		}
		return err
	}

	a.snapshot = user
	a.printProfile()
	return nil
}

func (a *App) printProfile() {
	u := a.snapshot
	printlnFn(fmt.Sprintf("  Name:       %s %s", u.FirstName, u.LastName))
	printlnFn(fmt.Sprintf("  Username:   %s", u.Username))
	printlnFn(fmt.Sprintf("  Email:      %s", u.Email))
	printlnFn(fmt.Sprintf("  Education:  %s", u.EducationLevel))
	printlnFn(fmt.Sprintf("  Birth date: %s", u.BirthDate))
}

// EditProfile prompts for each mutable field (empty keeps the current
// value) and saves the result. The username cannot be changed.
func (a *App) EditProfile(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	current, err := a.profile.Load(ctx)
	if err != nil {
		printlnFn("Could not load your profile.")
		return err
	}
	a.snapshot = current

	edited := *current

	prompts := []struct {
		label string
		dst   *string
	}{
		{"First name", &edited.FirstName},
		{"Last name", &edited.LastName},
		{"Email", &edited.Email},
		{"Education level", &edited.EducationLevel},
		{"Birth date (YYYY-MM-DD)", &edited.BirthDate},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (empty keeps current)", p.label, *p.dst), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = v
		}
	}

	if getConfirm(a.reader, "Change password?", os.Stdout) {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)
		edited.Password = string(password)
	}

	if err := a.profile.Save(ctx, &edited); err != nil {
		printlnFn("Could not save your changes.")
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
