// Package main provides the clean command for removing development artifacts.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/filetidy/cli/internal/clean"
	"github.com/filetidy/cli/internal/ui"
)

// cleanLogsDir overrides the default logs directory (<directory>/logs).
var cleanLogsDir string

// cleanCmd removes __pycache__ directories and rotated log files.
var cleanCmd = &cobra.Command{
	Use:   "clean <directory>",
	Short: "Remove cache directories and rotated log files",
	Long: `Recursively removes every __pycache__ directory under the given
directory, and removes *.log files (and rotated *.log.* variants) from the
logs directory. Failures on individual entries are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanLogsDir, "logs-dir", "", "Logs directory to sweep (default <directory>/logs)")
}

// runClean handles the clean command execution.
func runClean(cmd *cobra.Command, args []string) error {
	root, err := validateRoot(args[0])
	if err != nil {
		return err
	}

	logsDir := cleanLogsDir
	if logsDir == "" {
		logsDir = filepath.Join(root, "logs")
	}

	dirs, err := clean.RemoveCacheDirs(root)
	if err != nil {
		return err
	}

	logs, err := clean.RemoveLogFiles(logsDir)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Removed %d cache directories and %d log files", dirs, logs)
	return nil
}
