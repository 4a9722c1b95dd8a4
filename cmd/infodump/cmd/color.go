package cmd

import (
	"io"

	"github.com/josephfleet/infodump/internal/ui"
)

// noColorFor decides whether to suppress color for the given writer.
// Color is cosmetic only: an explicit --no-color, the NO_COLOR convention,
// or piped output all degrade to plain text.
func noColorFor(out io.Writer, noColorFlag bool) bool {
	if noColorFlag {
		return true
	}
	return !ui.ShouldColor(out)
}
