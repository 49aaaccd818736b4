// Package main provides the sanitize command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filetidy/cli/internal/sanitize"
)

// sanitizeCmd prints the sanitized form of each argument, one per line.
// Bracketed [hash/id] annotations keep their case and internal hyphens.
var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <name>...",
	Short: "Sanitize file names into a constrained character set",
	Long: `Normalizes each name: spaces become hyphens, characters outside
[a-z0-9._-] are removed, hyphen runs collapse, and letters are lowercased.
Text inside square brackets (hash or id annotations) is preserved verbatim
apart from the character filter.

Example: filetidy sanitize "My Report [AbC123].pdf"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Println(sanitize.Name(name))
		}
	},
}
