// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reprise-cli/internal/issue"
	"reprise-cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	if cfg.DefaultRuntime != RuntimeNative {
		t.Errorf("expected default runtime to be native, got %s", cfg.DefaultRuntime)
	}
	if len(cfg.TaskfilePaths) != 0 {
		t.Errorf("expected default taskfile paths to be empty, got %v", cfg.TaskfilePaths)
	}
	if cfg.Aliases.CatalogDir != "" {
		t.Errorf("expected default catalog dir to be empty (home), got %q", cfg.Aliases.CatalogDir)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Parallel()
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultRuntime != RuntimeNative {
		t.Errorf("expected defaults, got runtime %s", cfg.DefaultRuntime)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `
default_runtime: "virtual"
taskfile_paths: ["/opt/tasks"]
aliases: {
	catalog_dir: "/var/lib/reprise"
}
ui: {
	verbose: true
}
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultRuntime != RuntimeVirtual {
		t.Errorf("expected virtual runtime, got %s", cfg.DefaultRuntime)
	}
	if len(cfg.TaskfilePaths) != 1 || cfg.TaskfilePaths[0] != "/opt/tasks" {
		t.Errorf("unexpected taskfile paths: %v", cfg.TaskfilePaths)
	}
	if cfg.Aliases.CatalogDir != "/var/lib/reprise" {
		t.Errorf("unexpected catalog dir: %q", cfg.Aliases.CatalogDir)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose to be true")
	}
	// Fields the file omits keep their defaults.
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme, got %s", cfg.UI.ColorScheme)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, path, `default_runtime: "virtual"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultRuntime != RuntimeVirtual {
		t.Errorf("expected virtual runtime, got %s", cfg.DefaultRuntime)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Parallel()
	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("expected an ActionableError, got %T", err)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{"unknown runtime", `default_runtime: "container"`},
		{"wrong type", `taskfile_paths: "not-a-list"`},
		{"unknown color scheme", `ui: { color_scheme: "sepia" }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), tc.content)
			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestLoadCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateCUERoundtrip(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		DefaultRuntime: RuntimeVirtual,
		TaskfilePaths:  []string{"/opt/tasks", "/srv/tasks"},
		Aliases:        AliasesConfig{CatalogDir: "/var/lib/reprise"},
		UI:             UIConfig{ColorScheme: ColorSchemeDark, Verbose: true},
	}

	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), GenerateCUE(cfg))

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load of generated config failed: %v", err)
	}
	if loaded.DefaultRuntime != cfg.DefaultRuntime {
		t.Errorf("runtime changed in roundtrip: %s", loaded.DefaultRuntime)
	}
	if len(loaded.TaskfilePaths) != 2 {
		t.Errorf("taskfile paths changed in roundtrip: %v", loaded.TaskfilePaths)
	}
	if loaded.Aliases.CatalogDir != cfg.Aliases.CatalogDir {
		t.Errorf("catalog dir changed in roundtrip: %q", loaded.Aliases.CatalogDir)
	}
	if loaded.UI.ColorScheme != ColorSchemeDark || !loaded.UI.Verbose {
		t.Errorf("ui changed in roundtrip: %+v", loaded.UI)
	}
}

func TestConfigDirOverride(t *testing.T) {
	// Not parallel: mutates package-level override state.
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestSaveAndReload(t *testing.T) {
	// Not parallel: mutates package-level override state.
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg := DefaultConfig()
	cfg.DefaultRuntime = RuntimeVirtual
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.cue")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultRuntime != RuntimeVirtual {
		t.Errorf("expected virtual runtime after reload, got %s", loaded.DefaultRuntime)
	}
}

func TestRuntimeModeValidate(t *testing.T) {
	t.Parallel()
	for _, mode := range []RuntimeMode{RuntimeNative, RuntimeVirtual} {
		if err := mode.Validate(); err != nil {
			t.Errorf("Validate(%s) failed: %v", mode, err)
		}
	}
	if err := RuntimeMode("container").Validate(); !errors.Is(err, ErrInvalidRuntimeMode) {
		t.Errorf("expected ErrInvalidRuntimeMode, got %v", err)
	}
}
