package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the column width of w when it is a terminal, or
// fallback otherwise. A fallback of 0 means DefaultWidth.
func TerminalWidth(w io.Writer, fallback int) int {
	if fallback <= 0 {
		fallback = DefaultWidth
	}

	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
