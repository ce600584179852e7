// Package terminal reports the size of the output terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// SizeOf returns the size of the terminal behind f. Falls back to the
// defaults when f is not a terminal.
func SizeOf(f *os.File) (width, height int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the current width and height of stdout
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal returns true if stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CenterIndent returns the left padding that centres content of the given
// width in a line of lineWidth columns
func CenterIndent(lineWidth, contentWidth int) int {
	if contentWidth >= lineWidth {
		return 0
	}
	return (lineWidth - contentWidth) / 2
}
