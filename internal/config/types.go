// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// RuntimeNative runs task scripts in the host system shell.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs task scripts in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark colors.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light colors.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidRuntimeMode is returned when a RuntimeMode value is not recognized.
	ErrInvalidRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// RuntimeMode selects the execution runtime for task scripts.
	RuntimeMode string

	// ColorScheme is the terminal color scheme preference.
	ColorScheme string

	// AliasesConfig configures the alias engine.
	AliasesConfig struct {
		// CatalogDir overrides where per-tool alias catalog files live.
		// Empty means the user's home directory.
		CatalogDir string `mapstructure:"catalog_dir"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the loaded reprise configuration.
	Config struct {
		DefaultRuntime RuntimeMode   `mapstructure:"default_runtime"`
		TaskfilePaths  []string      `mapstructure:"taskfile_paths"`
		Aliases        AliasesConfig `mapstructure:"aliases"`
		UI             UIConfig      `mapstructure:"ui"`
	}
)

// Validate checks a RuntimeMode value.
func (m RuntimeMode) Validate() error {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidRuntimeMode, string(m))
}

// Validate checks a ColorScheme value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColorScheme, string(s))
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DefaultRuntime: RuntimeNative,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
