// SPDX-License-Identifier: MPL-2.0

// Package runtime executes task scripts. Two runtimes exist: native runs
// the script through the system shell, virtual runs it in the embedded
// mvdan/sh interpreter with no external shell dependency.
package runtime

import (
	"context"
	"fmt"
	"io"

	"reprise-cli/internal/config"
)

type (
	// ExecutionContext carries everything a runtime needs to run one script.
	ExecutionContext struct {
		Context context.Context
		// Script is the shell source to execute.
		Script string
		// WorkDir is the working directory ("" keeps the process directory).
		WorkDir string
		// Args are positional parameters exposed to the script as $1, $2, ...
		Args []string
		// Env are extra KEY=VALUE pairs layered over the process environment.
		Env []string

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of one execution. A non-nil Error describes an
	// engine-level failure; a plain non-zero script exit sets ExitCode only.
	Result struct {
		ExitCode int
		Error    error
	}

	// Runtime executes task scripts.
	Runtime interface {
		Name() string
		Available() bool
		Execute(ctx *ExecutionContext) *Result
	}
)

// ForMode returns the runtime for a configured mode.
func ForMode(mode config.RuntimeMode) (Runtime, error) {
	switch mode {
	case config.RuntimeNative:
		return NewNativeRuntime(), nil
	case config.RuntimeVirtual:
		return NewVirtualRuntime(), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrInvalidRuntimeMode, string(mode))
}
