// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"reprise-cli/internal/alias"
	"reprise-cli/internal/config"
	"reprise-cli/internal/issue"
)

// App bundles the dependencies command handlers need, so commands stay
// constructable in tests without package-level singletons.
type App struct {
	Config config.Provider
}

// NewApp creates an App with the default file-backed providers.
func NewApp() *App {
	return &App{Config: config.NewProvider()}
}

// loadConfig loads configuration with the --config flag applied.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// openCatalog loads the alias table for the reprise tool identity, honoring
// the configured catalog directory. The returned store saves the same table
// back after mutations.
func (a *App) openCatalog(ctx context.Context) (*alias.Store, *alias.Table, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	store := alias.NewStore(cfg.Aliases.CatalogDir)
	table, err := store.Load(config.AppName)
	if err != nil {
		if errors.Is(err, alias.ErrStoreCorrupt) {
			printIssueCard(issue.CatalogCorruptId)
		}
		return nil, nil, err
	}
	return store, table, nil
}

// printIssueCard renders a catalog help card to stderr, best-effort.
func printIssueCard(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	if rendered, err := card.Render(); err == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
