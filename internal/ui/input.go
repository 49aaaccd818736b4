// Package ui provides interactive input components.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Prompt displays a prompt and reads one line of user input.
// It blocks until a full line arrives; there is no timeout.
func Prompt(message string) (string, error) {
	fmt.Printf("%s ", InfoStyle.Render(message))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// PromptConfirm displays a yes/no confirmation prompt. Only "yes" or "y"
// (case-insensitive) count as confirmation; anything else, including read
// errors, is a decline.
func PromptConfirm(message string) (bool, error) {
	input, err := Prompt(fmt.Sprintf("%s (yes/no):", message))
	if err != nil {
		return false, err
	}

	input = strings.ToLower(strings.TrimSpace(input))
	return input == "yes" || input == "y", nil
}
