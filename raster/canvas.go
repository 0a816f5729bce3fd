// Package raster implements text measuring and drawing on top of gg.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"repmark/layout"
)

// Canvas is the single drawing target of a run.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates canvas of requested size filled with background color.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	return &Canvas{dc: gg.NewContextForImage(imaging.New(width, height, bg))}
}

// Image returns current canvas content.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// StrokeRect outlines rectangle with lines of given width drawn inside of its
// edges, so outline never extends outside of b.
func (c *Canvas) StrokeRect(b layout.BBox, clr color.Color, width int) {
	w := float64(width)
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(w)
	c.dc.DrawRectangle(float64(b[0])+w/2, float64(b[1])+w/2, float64(b[2]-b[0]+1)-w, float64(b[3]-b[1]+1)-w)
	c.dc.Stroke()
}

// Pen draws with a single face on canvas. It implements layout.Surface.
type Pen struct {
	canvas *Canvas
	face   *Face
	ascent float64
}

// NewPen binds face to canvas.
func NewPen(c *Canvas, face *Face) *Pen {
	return &Pen{canvas: c, face: face, ascent: toFloat(face.Metrics().Ascent)}
}

// Face returns face used by the pen.
func (p *Pen) Face() *Face {
	return p.face
}

func (p *Pen) LineHeight() int {
	return p.face.Size
}

func (p *Pen) Width(text string) float64 {
	return toFloat(font.MeasureString(p.face, text))
}

// Bounds returns ink box of the text, anchored the same way DrawText is: (x, y)
// is on the ascender line.
func (p *Pen) Bounds(text string, x, y float64) layout.BBox {
	b, _ := font.BoundString(p.face, text)
	baseline := y + p.ascent
	return layout.BBox{
		int(math.Floor(x + toFloat(b.Min.X))),
		int(math.Floor(baseline + toFloat(b.Min.Y))),
		int(math.Ceil(x + toFloat(b.Max.X))),
		int(math.Ceil(baseline + toFloat(b.Max.Y))),
	}
}

func (p *Pen) DrawText(text string, x, y float64, c color.Color) {
	p.canvas.dc.SetFontFace(p.face)
	p.canvas.dc.SetColor(c)
	p.canvas.dc.DrawString(text, x, y+p.ascent)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
