// SPDX-License-Identifier: MPL-2.0

// Package taskfile loads reprisefile.cue files: the CUE documents that
// declare the tasks a reprise invocation can run.
package taskfile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"reprise-cli/pkg/cueutil"
)

// FileName is the task definition file reprise searches for.
const FileName = "reprisefile.cue"

//go:embed taskfile_schema.cue
var taskfileSchema string

var (
	// ErrTaskfileNotFound is returned when no reprisefile exists in any
	// search location.
	ErrTaskfileNotFound = errors.New("no reprisefile found")
	// ErrTaskNotFound is returned when a named task is not defined.
	ErrTaskNotFound = errors.New("task not found")
)

type (
	// Task is one runnable task definition.
	Task struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Script      string `json:"script"`
		// Runtime picks "native" or "virtual"; empty defers to the
		// configured default.
		Runtime string `json:"runtime,omitempty"`
		WorkDir string `json:"workdir,omitempty"`
	}

	// Taskfile is a parsed reprisefile.
	Taskfile struct {
		Version     string `json:"version,omitempty"`
		Description string `json:"description,omitempty"`
		Tasks       []Task `json:"tasks"`
		// FilePath is where the file was loaded from (not part of the schema).
		FilePath string `json:"-"`
	}
)

// Load parses and validates the reprisefile at path.
func Load(path string) (*Taskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tf, err := cueutil.ParseAndDecodeString[Taskfile](
		taskfileSchema, data, "#Reprisefile",
		cueutil.WithFilename(path), cueutil.WithConcrete(true),
	)
	if err != nil {
		return nil, err
	}
	tf.FilePath = path

	seen := make(map[string]struct{}, len(tf.Tasks))
	for _, t := range tf.Tasks {
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate task %q", path, t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return tf, nil
}

// Find locates a reprisefile: the current directory first, then extra
// search directories (the per-user tasks directory and configured paths).
// ErrTaskfileNotFound is returned when nothing matches.
func Find(cwd string, extraDirs ...string) (string, error) {
	dirs := append([]string{cwd}, extraDirs...)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrTaskfileNotFound
}

// Get returns the named task.
func (tf *Taskfile) Get(name string) (Task, error) {
	for _, t := range tf.Tasks {
		if t.Name == name {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, name)
}

// Names returns the task names in declaration order.
func (tf *Taskfile) Names() []string {
	names := make([]string, len(tf.Tasks))
	for i, t := range tf.Tasks {
		names[i] = t.Name
	}
	return names
}
