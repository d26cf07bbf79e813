package ui

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalWidth returns the current terminal width in columns.
// If the terminal width cannot be determined (non-TTY or error),
// returns Display.DefaultTerminalWidth.
func GetTerminalWidth() int {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return Display.DefaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return Display.DefaultTerminalWidth
	}

	return width
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
