// Package layout places reporting marks on a page. It does not know how glyphs
// are rasterized, all measuring and drawing goes through Surface.
package layout

import (
	"fmt"
	"image/color"
)

// BBox is axis aligned pixel rectangle: x0, y0, x1, y1 with x0 <= x1 and y0 <= y1.
type BBox [4]int

func (b BBox) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b[0], b[1], b[2], b[3])
}

// Grow returns rectangle expanded by pad on all four sides.
func (b BBox) Grow(pad int) BBox {
	return BBox{b[0] - pad, b[1] - pad, b[2] + pad, b[3] + pad}
}

// Surface is text measuring and drawing capability bound to a single font face
// and canvas.
type Surface interface {
	// LineHeight is nominal line height of the face in pixels.
	LineHeight() int
	// Width returns advance width of rendered text without drawing it.
	Width(text string) float64
	// Bounds returns bounding box of text as if drawn with top-left at (x, y).
	Bounds(text string, x, y float64) BBox
	// DrawText draws text with top-left at (x, y).
	DrawText(text string, x, y float64, c color.Color)
}

// Cursor is position of the next line. It belongs to a single layout pass.
type Cursor struct {
	X, Y float64
}

// Entry is a single end mark. Stacked is nil when entry does not carry its own
// placement preference and page default should be used.
type Entry struct {
	Text    string
	Stacked *bool
}

// SideResult describes where a side line ended up.
type SideResult struct {
	Text string
	BBox BBox
}

// EndResult describes where an end entry ended up. For PlacementSingle Bottom
// is always equal to Top. For PlacementInline Bottom spans from Top's top-left
// corner to the suffix's bottom-right corner.
type EndResult struct {
	Text      string
	Placement Placement
	Top       BBox
	Bottom    BBox
	// Suffix is box of the second part exactly as drawn. It is not exported,
	// for inline entries it is the only place where suffix position is kept.
	Suffix BBox
}

// Split reports whether entry has been split into two boxes.
func (r EndResult) Split() bool {
	return r.Top != r.Bottom
}
