// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime executes scripts in-process with the mvdan/sh interpreter.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string { return "virtual" }

// Available always reports true: the interpreter is built in.
func (r *VirtualRuntime) Available() bool { return true }

// Validate parses the script to catch syntax errors before execution.
func (r *VirtualRuntime) Validate(script string) error {
	if script == "" {
		return fmt.Errorf("script has no content to execute")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(script), "script"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// Execute runs the script in the embedded interpreter.
func (r *VirtualRuntime) Execute(ctx *ExecutionContext) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(ctx.Script), "script")
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to parse script: %w", err)}
	}

	env := append(os.Environ(), ctx.Env...)
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
	}
	if ctx.WorkDir != "" {
		opts = append(opts, interp.Dir(ctx.WorkDir))
	}
	// "--" ends option parsing; without it a leading "-v" in the args would
	// be taken for a shell option by interp.Params.
	if len(ctx.Args) > 0 {
		params := append([]string{"--"}, ctx.Args...)
		opts = append(opts, interp.Params(params...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	log.Debug("executing script", "runtime", r.Name(), "args", len(ctx.Args))
	if err := runner.Run(execCtx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: int(exitStatus)}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("script execution failed: %w", err)}
	}
	return &Result{ExitCode: 0}
}
