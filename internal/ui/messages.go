// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// quietMode suppresses non-essential output when set via SetQuietMode.
var quietMode bool

// SetQuietMode enables or disables quiet mode for all ui output helpers.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// Println prints an empty line.
func Println() {
	fmt.Println()
}

// PrintSuccess prints a success message with a ✓ marker.
func PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message with a ✗ marker.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message. Suppressed in quiet mode.
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message. Suppressed in quiet mode.
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// PrintTitle prints a section heading between full-width dividers.
func PrintTitle(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	PrintDivider()
	fmt.Println(TitleStyle.Render(msg))
	PrintDivider()
}

// PrintDivider prints a horizontal rule spanning the terminal width.
func PrintDivider() {
	if quietMode {
		return
	}
	fmt.Println(DimStyle.Render(strings.Repeat("─", terminalWidth())))
}

// terminalWidth returns the current terminal width, clamped to a sane range.
// Falls back to 80 when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		return 120
	}
	return width
}
