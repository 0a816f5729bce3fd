package layout

import (
	"image/color"
	"math"
)

// DefaultInlineGapFactor is portion of prefix width used as gap between prefix
// and suffix of inline entry.
const DefaultInlineGapFactor = 0.3

// StackOptions controls end entries layout.
type StackOptions struct {
	Origin Cursor
	// Spacing is vertical distance between consecutive entries.
	Spacing int
	// InnerGap is added between top and bottom halves of stacked entry.
	InnerGap int
	Color    color.Color
	// ForceStack is used for entries without their own preference.
	ForceStack bool
	// GapFactor sizes inline gap relative to prefix width.
	GapFactor float64
}

// Stack lays out end entries. Every entry, however degenerate, produces exactly
// one result and moves cursor down. Horizontal position is reset to the origin
// for each entry.
func Stack(s Surface, entries []Entry, opts StackOptions) []EndResult {
	results := make([]EndResult, 0, len(entries))

	cur := opts.Origin
	for _, e := range entries {
		var res EndResult
		res, cur = stackEntry(s, e, cur, opts)
		results = append(results, res)
	}
	return results
}

// stackEntry draws single entry at cursor and returns its result together with
// cursor for the next entry.
func stackEntry(s Surface, e Entry, cur Cursor, opts StackOptions) (EndResult, Cursor) {
	lh := s.LineHeight()
	placement, top, bottom := decide(e, opts.ForceStack)
	res := EndResult{Text: e.Text, Placement: placement}

	switch placement {
	case PlacementStacked:
		y2 := cur.Y + float64(lh+opts.InnerGap)
		s.DrawText(top, cur.X, cur.Y, opts.Color)
		s.DrawText(bottom, cur.X, y2, opts.Color)
		res.Top = s.Bounds(top, cur.X, cur.Y)
		res.Bottom = s.Bounds(bottom, cur.X, y2)
		res.Suffix = res.Bottom
		cur.Y += float64(2*lh + opts.InnerGap + opts.Spacing)

	case PlacementInline:
		width := s.Width(top)
		x2 := cur.X + width + math.Round(width*opts.GapFactor)
		s.DrawText(top, cur.X, cur.Y, opts.Color)
		s.DrawText(bottom, x2, cur.Y, opts.Color)
		res.Top = s.Bounds(top, cur.X, cur.Y)
		res.Suffix = s.Bounds(bottom, x2, cur.Y)
		// top-left of prefix, bottom-right of suffix: not a true union when
		// boxes differ vertically
		res.Bottom = BBox{res.Top[0], res.Top[1], res.Suffix[2], res.Suffix[3]}
		cur.Y += float64(lh + opts.Spacing)

	default:
		s.DrawText(e.Text, cur.X, cur.Y, opts.Color)
		res.Top = s.Bounds(e.Text, cur.X, cur.Y)
		res.Bottom, res.Suffix = res.Top, res.Top
		cur.Y += float64(lh + opts.Spacing)
	}
	cur.X = opts.Origin.X
	return res, cur
}
