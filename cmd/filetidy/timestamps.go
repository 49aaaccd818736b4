// Package main provides the timestamps command for batch-renaming files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/filetidy/cli/internal/rename"
	"github.com/filetidy/cli/internal/ui"
)

// timestampsYes skips the confirmation prompt when set.
var timestampsYes bool

// timestampsCmd moves trailing timestamps to the front of file names across
// a directory tree, with a dry-run preview and a confirmation gate.
var timestampsCmd = &cobra.Command{
	Use:   "timestamps <directory>",
	Short: "Move timestamp suffixes to the front of file names",
	Long: `Recursively scans a directory for files whose names end in a timestamp
(e.g. "vacation-photo-2025-10-09-21-15-39-PM.jpg") and renames them with the
timestamp first ("2025-10-09-21-15-39-PM-vacation-photo.jpg").

All candidate renames are previewed before anything is touched; nothing is
renamed until you confirm.`,
	Args: cobra.ExactArgs(1),
	RunE: runTimestamps,
}

func init() {
	timestampsCmd.Flags().BoolVarP(&timestampsYes, "yes", "y", false, "Skip the confirmation prompt")
}

// runTimestamps handles the timestamps command execution.
func runTimestamps(cmd *cobra.Command, args []string) error {
	root, err := validateRoot(args[0])
	if err != nil {
		return err
	}

	ui.PrintInfo("Searching in: %s", root)

	candidates, err := rename.Scan(root)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	if len(candidates) == 0 {
		ui.PrintInfo("No files matching the timestamp pattern were found.")
		return nil
	}

	// Dry run: show every rename before touching anything.
	ui.Println()
	ui.PrintTitle("DRY RUN - Files that would be renamed:")
	ui.Println()
	for _, c := range candidates {
		ui.PrintInfo("FROM: %s", c.Path)
		ui.PrintInfo("  TO: %s", filepath.Join(filepath.Dir(c.Path), c.NewName))
		ui.Println()
	}
	ui.PrintInfo("Total files to rename: %d", len(candidates))

	if !timestampsYes {
		stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		if !stdinTTY {
			ui.PrintWarning("stdin is not a terminal; reading confirmation from it anyway (use --yes to skip)")
		}

		ui.Println()
		confirmed, err := ui.PromptConfirm("Proceed with renaming?")
		if err != nil || !confirmed {
			ui.Println()
			ui.PrintInfo("Renaming cancelled.")
			return nil
		}
	}

	ui.Println()
	ui.PrintTitle("Renaming files...")
	ui.Println()

	summary := rename.Execute(candidates, func(r rename.Result) {
		name := filepath.Base(r.Candidate.Path)
		if r.Err != nil {
			ui.PrintError("Error renaming %s: %v", name, r.Err)
		} else {
			ui.PrintSuccess("%s", name)
		}
	})

	ui.Println()
	ui.PrintDivider()
	ui.PrintInfo("Summary: %d renamed, %d errors", summary.Renamed, summary.Failed)
	ui.PrintDivider()
	return nil
}

// validateRoot checks that path exists and is a directory, and resolves it to
// an absolute path.
func validateRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory %q does not exist", path)
		}
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}
