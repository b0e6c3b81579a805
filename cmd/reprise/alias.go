// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"reprise-cli/internal/alias"
	"reprise-cli/internal/config"
	"reprise-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newAliasCommand creates the `reprise alias` command tree.
// Alias operations load the catalog, mutate the table, and save it back,
// capturing the App via closure.
func newAliasCommand(app *App) *cobra.Command {
	var global bool
	var description string

	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage command aliases",
		Long: `Manage command aliases.

An alias stores a reprise command line under a short name. Names are
scoped by their spelling: '/name' is global, '.name' belongs to the
current directory, '..name' to its parent (one extra dot per level), and
'~name' to your home directory. A bare name means the current directory;
pass --global to mean the global scope instead.

Examples:
  reprise alias set .b task build --fast
  reprise alias set /deploy task deploy
  reprise alias list
  reprise alias delete .b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	aliasCmd.PersistentFlags().BoolVarP(&global, "global", "g", false,
		"treat a bare alias name as global instead of current-directory scoped")

	setCmd := &cobra.Command{
		Use:   "set <name> <command>...",
		Short: "Create or replace an alias",
		Long: `Create or replace an alias.

The command tokens after the name are stored verbatim, in order,
including option tokens like --fast. Setting an existing alias replaces
its stored command entirely; old and new tokens are never merged. When
the alias is invoked, extra arguments are appended after the stored
tokens. Flags of set itself go before the alias name.

Examples:
  reprise alias set .b task run build --fast
  reprise alias set ..test task run test
  reprise alias set -d "ship to prod" /deploy task run deploy`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasSet(cmd.Context(), app, args[0], args[1:], description, global)
		},
	}
	setCmd.Flags().StringVarP(&description, "description", "d", "", "human-readable note stored with the alias")
	// Stored commands carry their own option tokens; stop flag parsing at
	// the alias name so they reach RunE verbatim. Set flags go before it.
	setCmd.Flags().SetInterspersed(false)
	aliasCmd.AddCommand(setCmd)

	aliasCmd.AddCommand(&cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasDelete(cmd.Context(), app, args[0], global)
		},
	})

	var scope string
	var expandNames bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored aliases",
		Long: `List stored aliases.

By default every alias in the catalog is shown, with names shrunk to
their shortest spelling relative to the current directory. Use --scope
to narrow the listing and --expand-names to print full canonical keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasList(cmd.Context(), app, scope, expandNames)
		},
	}
	listCmd.Flags().StringVar(&scope, "scope", "all", "which aliases to list: all, global, or local")
	listCmd.Flags().BoolVar(&expandNames, "expand-names", false, "print full canonical keys instead of shrunk names")
	aliasCmd.AddCommand(listCmd)

	aliasCmd.AddCommand(&cobra.Command{
		Use:   "show <name>...",
		Short: "Show one or more aliases in detail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasShow(cmd.Context(), app, args, global)
		},
	})

	aliasCmd.AddCommand(&cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename an alias, keeping its stored command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasRename(cmd.Context(), app, args[0], args[1], global)
		},
	})

	return aliasCmd
}

func runAliasSet(ctx context.Context, app *App, name string, command []string, description string, global bool) error {
	key, err := resolveManagementName(name, global)
	if err != nil {
		return err
	}

	store, table, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}

	rec, created := table.Set(key, command, description)
	if err := store.Save(table, config.AppName); err != nil {
		return err
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	fmt.Printf("%s %s alias %s\n", SuccessStyle.Render("✓"), verb, NameStyle.Render(string(key)))
	fmt.Printf("  command: %s\n", strings.Join(rec.Command, " "))
	if rec.Description != "" {
		fmt.Printf("  note:    %s\n", SubtitleStyle.Render(rec.Description))
	}
	return nil
}

func runAliasDelete(ctx context.Context, app *App, name string, global bool) error {
	key, err := resolveManagementName(name, global)
	if err != nil {
		return err
	}

	store, table, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}

	if !table.Delete(key) {
		return fmt.Errorf("%w: %q (key %s)", alias.ErrAliasNotFound, name, key)
	}
	if err := store.Save(table, config.AppName); err != nil {
		return err
	}

	fmt.Printf("%s deleted alias %s\n", SuccessStyle.Render("✓"), NameStyle.Render(string(key)))
	return nil
}

func runAliasList(ctx context.Context, app *App, scope string, expandNames bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	var filter alias.ScopeFilter
	switch scope {
	case "all":
		filter = alias.AllScopes()
	case "global":
		filter = alias.GlobalScope()
	case "local":
		filter = alias.DirScope(cwd)
	default:
		return fmt.Errorf("unknown scope %q (expected all, global, or local)", scope)
	}

	_, table, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}

	entries := table.List(filter)
	if len(entries) == 0 {
		fmt.Printf("%s No aliases stored\n", WarningStyle.Render("!"))
		fmt.Println()
		fmt.Printf("  To create one: %s\n", NameStyle.Render("reprise alias set .name <command>..."))
		return nil
	}

	fmt.Println(TitleStyle.Render("Aliases"))
	fmt.Println()
	for _, e := range entries {
		name := alias.Shrink(e.Key, cwd)
		if expandNames {
			name = string(e.Key)
		}
		fmt.Printf("  %s  %s\n", NameStyle.Render(name), strings.Join(e.Record.Command, " "))
		if e.Record.Description != "" {
			fmt.Printf("  %s  %s\n", strings.Repeat(" ", len(name)), SubtitleStyle.Render(e.Record.Description))
		}
	}
	return nil
}

func runAliasShow(ctx context.Context, app *App, names []string, global bool) error {
	_, table, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	for i, name := range names {
		key, err := resolveManagementName(name, global)
		if err != nil {
			return err
		}
		rec, ok := table.Get(key)
		if !ok {
			printIssueCard(issue.AliasNotFoundId)
			return fmt.Errorf("%w: %q (key %s)", alias.ErrAliasNotFound, name, key)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Println(TitleStyle.Render(alias.Shrink(key, cwd)))
		fmt.Printf("  key:     %s\n", string(key))
		scope := key.ScopeDir()
		if key.IsGlobal() {
			scope = "global"
		}
		fmt.Printf("  scope:   %s\n", scope)
		fmt.Printf("  command: %s\n", strings.Join(rec.Command, " "))
		if rec.Description != "" {
			fmt.Printf("  note:    %s\n", rec.Description)
		}
		fmt.Printf("  updated: %s\n", rec.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runAliasRename(ctx context.Context, app *App, oldName, newName string, global bool) error {
	from, err := resolveManagementName(oldName, global)
	if err != nil {
		return err
	}
	to, err := resolveManagementName(newName, global)
	if err != nil {
		return err
	}

	store, table, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}

	if err := table.Rename(from, to); err != nil {
		if errors.Is(err, alias.ErrAliasNotFound) {
			return fmt.Errorf("%w: %q (key %s)", alias.ErrAliasNotFound, oldName, from)
		}
		if errors.Is(err, alias.ErrAliasExists) {
			return fmt.Errorf("%w: %q (key %s)", alias.ErrAliasExists, newName, to)
		}
		return err
	}
	if err := store.Save(table, config.AppName); err != nil {
		return err
	}

	fmt.Printf("%s renamed %s to %s\n", SuccessStyle.Render("✓"),
		NameStyle.Render(string(from)), NameStyle.Render(string(to)))
	return nil
}

// resolveManagementName canonicalizes a typed name in the management-command
// context, rendering the scope help card when the dot prefix walks past the
// filesystem root.
func resolveManagementName(name string, global bool) (alias.CanonicalKey, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	key, err := alias.ResolveInScope(name, cwd, global)
	if err != nil {
		if errors.Is(err, alias.ErrScopeOutOfRange) {
			printIssueCard(issue.ScopeOutOfRangeId)
		}
		return "", err
	}
	return key, nil
}
