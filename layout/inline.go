package layout

import "image/color"

// InlineOptions controls side lines layout.
type InlineOptions struct {
	Origin  Cursor
	Spacing int
	Color   color.Color
}

// Inline draws lines one under another at the same left margin. After each line
// cursor moves down by face line height plus spacing.
func Inline(s Surface, lines []string, opts InlineOptions) []SideResult {
	results := make([]SideResult, 0, len(lines))

	cur := opts.Origin
	for _, line := range lines {
		s.DrawText(line, cur.X, cur.Y, opts.Color)
		results = append(results, SideResult{Text: line, BBox: s.Bounds(line, cur.X, cur.Y)})
		cur.Y += float64(s.LineHeight() + opts.Spacing)
	}
	return results
}
