// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"reprise-cli/internal/alias"
	"reprise-cli/internal/issue"
	"reprise-cli/internal/registry"
)

// managementName is the subcommand that owns alias CRUD. It always wins
// classification, even when an alias shares its name.
const managementName = "alias"

// commandRegistry describes the reprise command surface to the classifier.
// Built from the actual cobra tree so the two can never drift apart.
func commandRegistry() *registry.Registry {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	return registry.New(managementName, names...)
}

// expandArgs is the alias front-end: it classifies the raw argument vector
// and, when the first non-flag token is an alias, splices the stored command
// in its place. Management and ordinary invocations pass through untouched.
//
// Recognized global flags before the first command token are honored here
// (they affect which config, and therefore which catalog, is consulted) and
// kept in the rewritten vector for cobra to parse again.
func expandArgs(app *App, argv []string) ([]string, error) {
	globals, rest := splitGlobalFlags(argv)
	if len(rest) == 0 {
		return argv, nil
	}

	_, table, err := app.openCatalog(context.Background())
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	inv, err := alias.Classify(rest, cwd, table, commandRegistry())
	if err != nil {
		switch {
		case errors.Is(err, alias.ErrAliasNotFound):
			printIssueCard(issue.AliasNotFoundId)
		case errors.Is(err, alias.ErrScopeOutOfRange):
			printIssueCard(issue.ScopeOutOfRangeId)
		}
		return nil, err
	}

	switch inv := inv.(type) {
	case alias.AliasInvocation:
		if verbose {
			printAliasExpansion(inv)
		}
		return append(globals, alias.Splice(inv.Record, inv.Remaining)...), nil
	default:
		return argv, nil
	}
}

// splitGlobalFlags peels recognized global flags off the front of argv and
// applies them, returning the flags and the remaining tokens. Splitting stops
// at the first token that is not a recognized global flag, so alias names
// and subcommand arguments are never consumed here.
func splitGlobalFlags(argv []string) (globals, rest []string) {
	i := 0
	for i < len(argv) {
		tok := argv[i]
		switch {
		case tok == "--verbose" || tok == "-v":
			verbose = true
			i++
		case tok == "--config" && i+1 < len(argv):
			cfgFile = argv[i+1]
			i += 2
		case strings.HasPrefix(tok, "--config="):
			cfgFile = strings.TrimPrefix(tok, "--config=")
			i++
		default:
			return argv[:i], argv[i:]
		}
	}
	return argv[:i], argv[i:]
}

func printAliasExpansion(inv alias.AliasInvocation) {
	spliced := alias.Splice(inv.Record, inv.Remaining)
	os.Stderr.WriteString(
		SubtitleStyle.Render("alias "+string(inv.Key)+" -> "+strings.Join(spliced, " ")) + "\n")
}
