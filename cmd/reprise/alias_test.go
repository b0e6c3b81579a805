// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"slices"
	"testing"

	"reprise-cli/internal/alias"
	"reprise-cli/internal/config"
)

// loadSeeded reads the catalog back from the directory seedCatalog produced.
func loadSeeded(t *testing.T, dir string) *alias.Table {
	t.Helper()
	table, err := alias.NewStore(dir).Load(config.AppName)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return table
}

func TestRunAliasSet(t *testing.T) {
	// Not parallel: mutates package-level flag state.
	app := NewApp()
	ctx := context.Background()

	t.Run("creates a global alias", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {})

		if err := runAliasSet(ctx, app, "b", []string{"task", "run", "build"}, "builds", true); err != nil {
			t.Fatalf("runAliasSet failed: %v", err)
		}

		table := loadSeeded(t, dir)
		rec, ok := table.Get("/b")
		if !ok {
			t.Fatal("global alias not persisted")
		}
		if rec.Description != "builds" {
			t.Errorf("description = %q", rec.Description)
		}
	})

	t.Run("replaces an existing alias", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {
			tbl.Set("/b", []string{"old", "tokens"}, "")
		})

		if err := runAliasSet(ctx, app, "/b", []string{"new"}, "", false); err != nil {
			t.Fatalf("runAliasSet failed: %v", err)
		}

		rec, _ := loadSeeded(t, dir).Get("/b")
		if len(rec.Command) != 1 || rec.Command[0] != "new" {
			t.Errorf("expected replacement, got %v", rec.Command)
		}
	})

	t.Run("rejects malformed names", func(t *testing.T) {
		saveGlobals(t)
		seedCatalog(t, func(tbl *alias.Table) {})

		err := runAliasSet(ctx, app, "a/b", []string{"x"}, "", false)
		if !errors.Is(err, alias.ErrMalformedAliasName) {
			t.Errorf("expected ErrMalformedAliasName, got %v", err)
		}
	})
}

// executeRoot runs the full cobra command line, including flag parsing,
// and restores the argument state afterwards.
func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func TestAliasSetCommandLine(t *testing.T) {
	// Not parallel: mutates package-level flag state and rootCmd arguments.

	t.Run("option tokens after the name are stored verbatim", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {})

		err := executeRoot(t, "alias", "set", "/b", "task", "run", "build", "--fast")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		rec, ok := loadSeeded(t, dir).Get("/b")
		if !ok {
			t.Fatal("alias not persisted")
		}
		want := []string{"task", "run", "build", "--fast"}
		if !slices.Equal(rec.Command, want) {
			t.Errorf("stored command = %v, want %v", rec.Command, want)
		}
	})

	t.Run("set flags before the name still apply", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {})

		err := executeRoot(t, "alias", "set", "-d", "ship it", "--global", "deploy", "task", "run", "deploy", "-x", "1")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		rec, ok := loadSeeded(t, dir).Get("/deploy")
		if !ok {
			t.Fatal("alias not persisted under the global key")
		}
		if rec.Description != "ship it" {
			t.Errorf("description = %q, want %q", rec.Description, "ship it")
		}
		want := []string{"task", "run", "deploy", "-x", "1"}
		if !slices.Equal(rec.Command, want) {
			t.Errorf("stored command = %v, want %v", rec.Command, want)
		}
	})
}

func TestRunAliasDelete(t *testing.T) {
	// Not parallel: mutates package-level flag state.
	app := NewApp()
	ctx := context.Background()

	t.Run("removes and persists", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {
			tbl.Set("/b", []string{"x"}, "")
		})

		if err := runAliasDelete(ctx, app, "/b", false); err != nil {
			t.Fatalf("runAliasDelete failed: %v", err)
		}
		if loadSeeded(t, dir).Len() != 0 {
			t.Error("alias survived deletion")
		}
	})

	t.Run("absent alias is an error", func(t *testing.T) {
		saveGlobals(t)
		seedCatalog(t, func(tbl *alias.Table) {})

		err := runAliasDelete(ctx, app, "/missing", false)
		if !errors.Is(err, alias.ErrAliasNotFound) {
			t.Errorf("expected ErrAliasNotFound, got %v", err)
		}
	})
}

func TestRunAliasRename(t *testing.T) {
	// Not parallel: mutates package-level flag state.
	app := NewApp()
	ctx := context.Background()

	t.Run("moves the record", func(t *testing.T) {
		saveGlobals(t)
		dir := seedCatalog(t, func(tbl *alias.Table) {
			tbl.Set("/old", []string{"x"}, "note")
		})

		if err := runAliasRename(ctx, app, "/old", "/new", false); err != nil {
			t.Fatalf("runAliasRename failed: %v", err)
		}

		table := loadSeeded(t, dir)
		if _, ok := table.Get("/old"); ok {
			t.Error("old key still present")
		}
		if _, ok := table.Get("/new"); !ok {
			t.Error("new key absent")
		}
	})

	t.Run("occupied target is an error", func(t *testing.T) {
		saveGlobals(t)
		seedCatalog(t, func(tbl *alias.Table) {
			tbl.Set("/a", []string{"x"}, "")
			tbl.Set("/b", []string{"y"}, "")
		})

		err := runAliasRename(ctx, app, "/a", "/b", false)
		if !errors.Is(err, alias.ErrAliasExists) {
			t.Errorf("expected ErrAliasExists, got %v", err)
		}
	})
}

func TestRunAliasList(t *testing.T) {
	// Not parallel: mutates package-level flag state.
	app := NewApp()
	ctx := context.Background()

	t.Run("unknown scope is rejected", func(t *testing.T) {
		saveGlobals(t)
		seedCatalog(t, func(tbl *alias.Table) {})

		if err := runAliasList(ctx, app, "everywhere", false); err == nil {
			t.Error("expected an error for an unknown scope")
		}
	})

	t.Run("valid scopes succeed", func(t *testing.T) {
		saveGlobals(t)
		seedCatalog(t, func(tbl *alias.Table) {
			tbl.Set("/b", []string{"x"}, "")
		})

		for _, scope := range []string{"all", "global", "local"} {
			if err := runAliasList(ctx, app, scope, false); err != nil {
				t.Errorf("runAliasList(%s) failed: %v", scope, err)
			}
		}
	})
}
