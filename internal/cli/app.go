// Package cli implements the interactive WaterTrack client: a small REPL
// over the authentication store and the entry/settings repositories, playing
// the part the web dashboard plays in a browser. Input validation (amount
// bounds, the custom-label rule) lives here, on the form side, so the
// repositories stay free of it.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/mlagunovs/watertrack/internal/auth"
	"github.com/mlagunovs/watertrack/internal/config"
	"github.com/mlagunovs/watertrack/internal/entries"
	"github.com/mlagunovs/watertrack/internal/kvstore"
	"github.com/mlagunovs/watertrack/internal/latency"
	"github.com/mlagunovs/watertrack/internal/models"
	"github.com/mlagunovs/watertrack/internal/settings"

	_ "modernc.org/sqlite"
)

// App holds the wired services plus the current session state.
type App struct {
	config   *config.Config
	store    *kvstore.SQLiteStore
	auth     *auth.Store
	entries  *entries.Repository
	settings *settings.Repository
	user     *models.User
	reader   *bufio.Reader
}

// NewApp opens the slot store named by the config and wires the
// repositories around it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	store, err := kvstore.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	var delay latency.Policy = latency.None{}
	if c.SimulateLatency {
		delay = latency.Simulated{}
	}

	return &App{
		config:   c,
		store:    store,
		auth:     auth.NewStore(store, delay),
		entries:  entries.NewRepository(store, delay),
		settings: settings.NewRepository(store, delay),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session, if any, and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if u, err := a.auth.CurrentUser(ctx); err == nil && u != nil {
		a.user = u
		log.Printf("Welcome back, %s", u.Name)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "not logged in"
	}
	return a.user.Email
}
