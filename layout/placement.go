package layout

//go:generate go tool go-enum

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// How an end entry is rendered.
// ENUM(single, inline, stacked)
type Placement int

// split cuts text on the first whitespace character. Everything after that
// single character is bottom, so "A  B" gives "A" and " B".
func split(text string) (top, bottom string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return text[:i], text[i+size:]
}

// decide resolves entry placement once, before anything is drawn. Explicit
// entry preference wins over page default, and nothing without a second part
// is ever stacked or split.
func decide(e Entry, forceStack bool) (placement Placement, top, bottom string) {
	top, bottom = split(e.Text)
	if len(bottom) == 0 {
		return PlacementSingle, e.Text, ""
	}
	stack := forceStack
	if e.Stacked != nil {
		stack = *e.Stacked
	}
	if stack {
		return PlacementStacked, top, bottom
	}
	return PlacementInline, top, bottom
}
