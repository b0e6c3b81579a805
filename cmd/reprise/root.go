// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for reprise.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"reprise-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "reprise",
		Short: "A task runner with scoped command aliases",
		Long: TitleStyle.Render("reprise") + SubtitleStyle.Render(" - A task runner with scoped command aliases") + `

reprise runs tasks defined in 'reprisefile.cue' files and lets you save
any command line as an alias. Aliases are scoped: a global alias works
everywhere, a local one belongs to the directory it was created in and
is found from that directory and its subdirectories.

` + SubtitleStyle.Render("Alias name forms:") + `
  /name     global alias
  .name     alias scoped to the current directory
  ..name    alias scoped to the parent directory (one dot per level)
  ~name     alias scoped to your home directory

` + SubtitleStyle.Render("Examples:") + `
  reprise task build              Run the 'build' task
  reprise alias set .b task build Save it as a local alias
  reprise .b                      Replay it (extra args are appended)
  reprise alias list              Show the stored aliases`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/reprise/config.cue)")

	app := NewApp()
	rootCmd.AddCommand(newAliasCommand(app))
	rootCmd.AddCommand(newTaskCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute resolves alias invocations in the raw argument vector, then runs
// the rewritten command line through cobra. This is called by main.main().
func Execute() {
	argv, err := expandArgs(NewApp(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		os.Exit(1)
	}
	rootCmd.SetArgs(argv)

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies config-file settings that back global flags.
func initRootConfig() {
	cfg, err := NewApp().loadConfig(context.Background())
	if err != nil {
		// Always surface config loading errors to the user.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
