// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"reprise-cli/pkg/taskfile"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a new reprisefile
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a new reprisefile in the current directory",
		Long: `Create a new reprisefile in the current directory with example tasks.

This command generates a starter reprisefile.cue with sample tasks to
help you get started quickly.`,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing reprisefile")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := taskfile.FileName
	if len(args) > 0 {
		filename = args[0]
	}

	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	if err := os.WriteFile(filename, []byte(starterReprisefile), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the reprisefile to add your tasks")
	fmt.Println("  2. Run 'reprise task' to see available tasks")
	fmt.Println("  3. Run 'reprise task run <task>' to execute one")
	fmt.Println("  4. Run 'reprise alias set .name task run <task>' to shorten it")

	return nil
}

const starterReprisefile = `// reprise task definitions. See 'reprise task --help'.
version: "1"
description: "Example tasks"

tasks: [
	{
		name:        "hello"
		description: "Print a greeting"
		script:      "echo 'Hello from reprise!'"
		runtime:     "virtual"
	},
	{
		name:        "greet"
		description: "Greet someone by name ($1)"
		script:      "echo \"Hello, ${1:-world}!\""
	},
]
`
