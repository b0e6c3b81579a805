// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	goruntime "runtime"

	"github.com/charmbracelet/log"
)

// ErrShellNotFound is returned when no usable shell exists for the native
// runtime.
var ErrShellNotFound = errors.New("no suitable shell found")

// NativeRuntime executes scripts through the system shell.
type NativeRuntime struct {
	// Shell overrides shell discovery when set.
	Shell string
}

// NewNativeRuntime creates a native runtime.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string { return "native" }

// Available reports whether a usable shell exists.
func (r *NativeRuntime) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Execute runs the script via `<shell> -c`. Positional arguments become the
// script's $1, $2, ... on POSIX shells.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	shell, err := r.getShell()
	if err != nil {
		return &Result{ExitCode: 1, Error: err}
	}

	args := []string{"-c", ctx.Script}
	if len(ctx.Args) > 0 {
		// `sh -c script name arg...` binds name to $0 and arg... to $1...
		args = append(args, shell)
		args = append(args, ctx.Args...)
	}

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	cmd := exec.CommandContext(execCtx, shell, args...)
	cmd.Dir = ctx.WorkDir
	cmd.Env = append(os.Environ(), ctx.Env...)
	cmd.Stdin = ctx.Stdin
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr

	log.Debug("executing script", "runtime", r.Name(), "shell", shell)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("script execution failed: %w", err)}
	}
	return &Result{ExitCode: 0}
}

// getShell resolves the shell to use: the explicit override, then $SHELL,
// then the platform fallbacks.
func (r *NativeRuntime) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell, nil
	}

	candidates := []string{"bash", "sh"}
	if goruntime.GOOS == "windows" {
		candidates = []string{"pwsh", "powershell", "cmd"}
	}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", ErrShellNotFound
}
