package config

import (
	"os"
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

func cleanName(in, reserved string) string {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(reserved, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// https://no-color.org
func noColor() bool {
	return len(os.Getenv("NO_COLOR")) > 0
}
