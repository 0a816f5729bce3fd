package render

import (
	"strconv"

	"repmark/layout"
	"repmark/utils/debug"
)

// dumpLayout produces human readable tree of layout decisions for debug
// report.
func dumpLayout(side []layout.SideResult, end []layout.EndResult, opts *layout.StackOptions) string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "side (%d)", len(side))
	for i, s := range side {
		tw.TextBlock(1, "line "+strconv.Itoa(i), s.Text)
		tw.Line(2, "bbox: %s", s.BBox)
	}

	tw.Line(0, "end (%d) force stack: %t, gap factor: %g", len(end), opts.ForceStack, opts.GapFactor)
	for i, e := range end {
		tw.TextBlock(1, "entry "+strconv.Itoa(i), e.Text)
		tw.Line(2, "placement: %s", e.Placement)
		switch e.Placement {
		case layout.PlacementSingle:
			tw.Line(2, "bbox: %s", e.Top)
		case layout.PlacementInline:
			tw.Line(2, "top: %s", e.Top)
			tw.Line(2, "suffix: %s", e.Suffix)
			tw.Line(2, "bottom: %s", e.Bottom)
		default:
			tw.Line(2, "top: %s", e.Top)
			tw.Line(2, "bottom: %s", e.Bottom)
		}
	}
	return tw.String()
}
