// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reprise-cli/internal/config"
	"reprise-cli/internal/issue"
	"reprise-cli/internal/runtime"
	"reprise-cli/pkg/taskfile"

	"github.com/spf13/cobra"
)

// newTaskCommand creates the `reprise task` command tree.
func newTaskCommand(app *App) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "List and run tasks from a reprisefile",
		Long: `List and run tasks from a reprisefile.

Tasks are defined in 'reprisefile.cue'. reprise looks for one in the
current directory first, then in ~/.reprise, then in any directories
listed under taskfile_paths in your configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskList(cmd.Context(), app)
		},
	}

	taskCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskList(cmd.Context(), app)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run <task> [args]...",
		Short: "Run a task, passing extra arguments to the script",
		Long: `Run a task, passing extra arguments to the script.

Arguments after the task name become the script's positional parameters
($1, $2, ...). Use '--' before arguments that start with a dash.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskRun(cmd.Context(), app, args[0], args[1:])
		},
	}
	// Let flag-looking tokens after the task name flow to the script.
	runCmd.Flags().SetInterspersed(false)
	taskCmd.AddCommand(runCmd)

	return taskCmd
}

// findTaskfile locates and loads the nearest reprisefile.
func findTaskfile(ctx context.Context, app *App) (*taskfile.Taskfile, error) {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(cfg.TaskfilePaths)+1)
	if tasksDir, err := config.TasksDir(); err == nil {
		dirs = append(dirs, tasksDir)
	}
	dirs = append(dirs, cfg.TaskfilePaths...)

	path, err := taskfile.Find(cwd, dirs...)
	if err != nil {
		if errors.Is(err, taskfile.ErrTaskfileNotFound) {
			printIssueCard(issue.TaskfileNotFoundId)
		}
		return nil, err
	}
	return taskfile.Load(path)
}

func runTaskList(ctx context.Context, app *App) error {
	tf, err := findTaskfile(ctx, app)
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Tasks") + SubtitleStyle.Render(" ("+tf.FilePath+")"))
	fmt.Println()
	if len(tf.Tasks) == 0 {
		fmt.Printf("%s The reprisefile defines no tasks\n", WarningStyle.Render("!"))
		return nil
	}
	for _, t := range tf.Tasks {
		fmt.Printf("  %s  %s\n", NameStyle.Render(t.Name), SubtitleStyle.Render(t.Description))
	}
	return nil
}

func runTaskRun(ctx context.Context, app *App, name string, args []string) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	tf, err := findTaskfile(ctx, app)
	if err != nil {
		return err
	}

	task, err := tf.Get(name)
	if err != nil {
		printIssueCard(issue.TaskNotFoundId)
		if names := tf.Names(); len(names) > 0 {
			fmt.Fprintln(os.Stderr, SubtitleStyle.Render("available tasks: "+strings.Join(names, ", ")))
		}
		return err
	}

	mode := cfg.DefaultRuntime
	if task.Runtime != "" {
		mode = config.RuntimeMode(task.Runtime)
	}
	rt, err := runtime.ForMode(mode)
	if err != nil {
		return err
	}
	if !rt.Available() {
		printIssueCard(issue.ShellNotFoundId)
		return fmt.Errorf("runtime %q is not available on this system", rt.Name())
	}

	workDir := task.WorkDir
	if workDir == "" {
		workDir = filepath.Dir(tf.FilePath)
	}

	if verbose {
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render(
			fmt.Sprintf("running task %s via %s runtime", task.Name, rt.Name())))
	}

	res := rt.Execute(&runtime.ExecutionContext{
		Context: ctx,
		Script:  task.Script,
		WorkDir: workDir,
		Args:    args,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}
