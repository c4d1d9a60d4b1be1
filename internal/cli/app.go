// Package cli implements the interactive front end of the huellitas client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/geo"
	"github.com/huellitas-app/huellitas/internal/logging"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/huellitas-app/huellitas/internal/news"
	"github.com/huellitas-app/huellitas/internal/services"
	"github.com/huellitas-app/huellitas/internal/session"
	"github.com/huellitas-app/huellitas/internal/storage"
)

// feed abstracts the news client for testing.
type feed interface {
	Fetch(ctx context.Context) ([]models.Article, error)
}

type App struct {
	cfg          *config.Config
	registration *services.RegistrationService
	loginService *services.LoginService
	profile      *services.ProfileService
	reports      *services.ReportsService
	news         feed
	locator      services.Locator
	guard        *session.Guard
	log          logging.Logger
	reader       *bufio.Reader

	// snapshot keeps the last successfully loaded profile so a store
	// error does not wipe what the user is looking at.
	snapshot *models.User
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dataDir, err := storage.EnsureDataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	repos, err := storage.InitDatabase(ctx, filepath.Join(dataDir, cfg.DatabaseFile))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	secret, err := session.LoadOrCreateSecret(dataDir)
	if err != nil {
		return nil, err
	}
	sessions := session.NewStore(dataDir, secret)

	locator := geo.NewClient(cfg)

	return &App{
		cfg:          cfg,
		registration: services.NewRegistrationService(repos.Users, sessions, cfg, log),
		loginService: services.NewLoginService(repos.Users, sessions, cfg, log),
		profile:      services.NewProfileService(repos.Users, repos.UsersTx, sessions, cfg, log),
		reports:      services.NewReportsService(repos.Reports, locator, log),
		news:         news.NewClient(cfg),
		locator:      locator,
		guard:        session.NewGuard(sessions),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.guard.Check(ctx).Allowed
}

// requireAuth is the authorization gate in front of every protected
// command. On denial it tells the user where to go and returns an error.
func (a *App) requireAuth(ctx context.Context) (string, error) {
	d := a.guard.Check(ctx)
	if !d.Allowed {
		printlnFn("Access denied. Please log in first (" + d.Redirect + ")")
		return "", common.ErrUnauthorized
	}
	return d.Username, nil
}

func (a *App) Run(ctx context.Context) {
	// already-logged-in users land straight in the main area
	if a.loginService.AlreadyLoggedIn(ctx) {
		if sess := a.guard.Check(ctx); sess.Allowed {
			printlnFn("Welcome back, " + sess.Username + "!")
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, scanner)
}

func (a *App) status(ctx context.Context) string {
	if d := a.guard.Check(ctx); d.Allowed {
		return "(" + d.Username + ")"
	}
	return ""
}

var errAborted = errors.New("aborted")
