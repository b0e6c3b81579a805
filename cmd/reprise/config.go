// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reprise-cli/internal/config"
	"reprise-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `reprise config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage reprise configuration",
		Long: `Manage reprise configuration.

Configuration is stored in:
  - Linux: ~/.config/reprise/config.cue
  - macOS: ~/Library/Application Support/reprise/config.cue
  - Windows: %APPDATA%\reprise\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context) error {
	cfg, path, err := config.ResolvedPath(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		printIssueCard(issue.ConfigLoadFailedId)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path != "" {
		fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", NameStyle.Render("default_runtime"), SuccessStyle.Render(string(cfg.DefaultRuntime)))
	fmt.Printf("%s: %s\n", NameStyle.Render("taskfile_paths"), SuccessStyle.Render(formatList(cfg.TaskfilePaths)))
	catalogDir := cfg.Aliases.CatalogDir
	if catalogDir == "" {
		catalogDir = "(home directory)"
	}
	fmt.Printf("%s: %s\n", NameStyle.Render("aliases.catalog_dir"), SuccessStyle.Render(catalogDir))
	fmt.Printf("%s: %s\n", NameStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("%s: %v\n", NameStyle.Render("ui.verbose"), cfg.UI.Verbose)

	return nil
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func initConfig() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
