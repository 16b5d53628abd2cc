// Package cli provides the cobra command tree and dependency wiring for
// the keyline CLI. This file is the composition root: the only place
// where concrete collaborators are instantiated and wired together.
// Commands reach everything through the package-level deps variable.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/config"
	"github.com/keyline-dev/keyline/internal/store"
	"github.com/keyline-dev/keyline/internal/ui"
)

// Dependencies holds the services CLI commands work with. Config and UI
// helpers exist from startup; the state database, API client, and entry
// cache are initialized lazily because they need a loaded configuration.
type Dependencies struct {
	Config     *config.Manager
	Repo       *store.Repo
	Projects   *store.ProjectStore
	Languages  *store.LanguageStore
	Categories *store.CategoryStore
	API        *api.Client
	Cache      *cache.EntryCache
	Headless   *ui.HeadlessManager
	Logger     *slog.Logger

	db *sql.DB
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the startup dependencies. It should be called
// once before the root command runs.
func InitDependencies() {
	// Terminal output belongs to lipgloss; keep slog quiet for CLI runs.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	headless := ui.NewHeadlessManager()
	headless.SetDefaults(setupEnvDefaults())

	deps = &Dependencies{
		Config:   config.NewManager(),
		Headless: headless,
		Logger:   logger,
	}
}

// setupEnvDefaults collects prompt answers for provisioning environments
// where no terminal is attached.
func setupEnvDefaults() map[string]string {
	defaults := make(map[string]string)
	if v := os.Getenv("KEYLINE_SETUP_URL"); v != "" {
		defaults["base_url"] = v
	}
	if v := os.Getenv("KEYLINE_SETUP_NAME"); v != "" {
		defaults["editor"] = v
	}
	return defaults
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureConfig loads the configuration from the keyline directory.
// Subsequent calls are no-ops.
func (d *Dependencies) EnsureConfig() error {
	if d.Config.Get() != nil {
		return nil
	}
	cfg, err := d.Config.Load(config.DefaultDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.System.NonInteractive {
		d.Headless.ForceHeadless(true)
	}
	return nil
}

// EnsureState opens the sqlite state database and hydrates the persisted
// selection stores. Requires EnsureConfig. Subsequent calls are no-ops.
func (d *Dependencies) EnsureState(ctx context.Context) error {
	if d.Repo != nil {
		return nil
	}
	if err := d.EnsureConfig(); err != nil {
		return err
	}

	db, err := store.Open(d.Config.StatePath())
	if err != nil {
		return err
	}
	d.db = db
	d.Repo = store.NewRepo(db)
	d.Projects = store.NewProjectStore(d.Repo)
	d.Languages = store.NewLanguageStore(d.Repo)
	d.Categories = store.NewCategoryStore(d.Repo)

	for name, h := range map[string]func(context.Context) error{
		"projects":   d.Projects.Hydrate,
		"languages":  d.Languages.Hydrate,
		"categories": d.Categories.Hydrate,
	} {
		if err := h(ctx); err != nil {
			return fmt.Errorf("hydrate %s store: %w", name, err)
		}
	}
	return nil
}

// EnsureAPI creates the sync client and the entry cache on top of it.
// Requires EnsureConfig. Subsequent calls are no-ops.
func (d *Dependencies) EnsureAPI() error {
	if d.API != nil {
		return nil
	}
	if err := d.EnsureConfig(); err != nil {
		return err
	}

	d.API = api.NewClient(d.Config.Get().API.BaseURL, d.Logger)
	d.Cache = cache.New(d.API.FetchEntries, d.Logger)
	return nil
}

// Close releases the state database if it was opened.
func (d *Dependencies) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// entriesInvalidator adapts the entry cache to the invalidation hook the
// edit controllers call after a successful save.
type entriesInvalidator struct {
	cache *cache.EntryCache
}

func (i entriesInvalidator) InvalidateEntries(projectID string) {
	i.cache.Invalidate(cache.EntriesKey(projectID))
}
