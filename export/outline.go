package export

import (
	"image/color"
	"math"

	"repmark/layout"
)

const (
	outlineWidth = 2
	minPadding   = 2
)

var outlineColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// Outliner is anything which could draw rectangle outlines.
type Outliner interface {
	StrokeRect(b layout.BBox, c color.Color, width int)
}

// Padding returns fixed padding when it is specified, otherwise 10% of font
// size but no less than 2 pixels.
func Padding(fixed *int, fontSize int) int {
	if fixed != nil {
		return *fixed
	}
	return max(minPadding, int(math.Round(float64(fontSize)*0.1)))
}

// DrawOutlines marks every box on the canvas. For split end entries both boxes
// are outlined. Boxes themselves are never modified.
func DrawOutlines(o Outliner, side []layout.SideResult, end []layout.EndResult, sidePad, endPad int) {
	for _, s := range side {
		o.StrokeRect(s.BBox.Grow(sidePad), outlineColor, outlineWidth)
	}
	for _, e := range end {
		o.StrokeRect(e.Top.Grow(endPad), outlineColor, outlineWidth)
		if e.Split() {
			o.StrokeRect(e.Bottom.Grow(endPad), outlineColor, outlineWidth)
		}
	}
}
