package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/huellitas-app/huellitas/internal/models"
)

// WhereAmI prints the current position as reported by the geolocation
// collaborator.
func (a *App) WhereAmI(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	pos, err := a.locator.Current(ctx)
	if err != nil {
		printlnFn("Could not determine your position:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("You are at %.4f, %.4f", pos.Latitude, pos.Longitude))
	return nil
}

// AddReport files a lost-pet report. Latitude/longitude may be entered
// explicitly; leaving them empty uses the current position.
func (a *App) AddReport(ctx context.Context) error {
	username, err := a.requireAuth(ctx)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Pet name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	pos, err := a.readPosition()
	if err != nil {
		printlnFn("Invalid coordinates.")
		return err
	}

	report, err := a.reports.Report(ctx, username, name, description, pos)
	if err != nil {
		printlnFn("Could not file the report:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Report filed at %.4f, %.4f (id %s)", report.Latitude, report.Longitude, report.ID))
	return nil
}

// readPosition reads optional coordinates. Empty latitude means "use the
// current position" and returns nil.
func (a *App) readPosition() (*models.Coordinates, error) {
	latText, err := getSimpleText(a.reader, "Latitude (empty uses current position)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if latText == "" {
		return nil, nil
	}

	lonText, err := getSimpleText(a.reader, "Longitude", os.Stdout)
	if err != nil {
		return nil, err
	}

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return nil, err
	}
	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// ListReports prints all filed reports, oldest first.
func (a *App) ListReports(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	all, err := a.reports.List(ctx)
	if err != nil {
		printlnFn("Could not list reports:", err.Error())
		return err
	}

	if len(all) == 0 {
		printlnFn("No reports yet.")
		return nil
	}

	for _, r := range all {
		printlnFn(fmt.Sprintf("- %s: %s (%.4f, %.4f) reported by %s",
			r.Name, r.Description, r.Latitude, r.Longitude, r.ReportedBy))
	}
	return nil
}
