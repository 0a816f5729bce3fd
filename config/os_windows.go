//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// CleanFileName makes stem usable as a single path element: reserved
// characters and control characters are dropped, so are leading dots.
func CleanFileName(in string) string {
	return cleanName(in, `<>":/\|?*`+string(os.PathSeparator)+string(os.PathListSeparator))
}

// EnableColorOutput checks if colorized output is possible and turns on VT100
// sequence processing in console. Consoles without VT support refuse the mode.
func EnableColorOutput(stream *os.File) bool {
	if noColor() || !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
