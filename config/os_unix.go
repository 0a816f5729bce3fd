//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// CleanFileName makes stem usable as a single path element: separators and
// control characters are dropped, so are leading dots.
func CleanFileName(in string) string {
	return cleanName(in, string(os.PathSeparator)+string(os.PathListSeparator))
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	if noColor() {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}
