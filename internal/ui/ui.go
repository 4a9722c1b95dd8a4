// Package ui provides terminal styling for the diagnostic report.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// ShouldColor decides whether to emit color for the given writer,
// honoring NO_COLOR and degrading to plain text when output is piped.
func ShouldColor(w io.Writer) bool {
	if DetectNoColor() {
		return false
	}
	return IsTTY(w)
}
