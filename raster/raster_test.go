package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"repmark/layout"
)

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func withoutSystemFonts(t *testing.T) {
	t.Helper()
	saved := fallbackPaths
	fallbackPaths = nil
	t.Cleanup(func() { fallbackPaths = saved })
}

func TestLoadFace_MissingFileFallsBack(t *testing.T) {
	withoutSystemFonts(t)

	f := LoadFace(filepath.Join(t.TempDir(), "nope.ttf"), 28, testLogger(t))
	if f == nil {
		t.Fatal("LoadFace() returned nil")
	}
	if f.Source != "embedded:gobold" {
		t.Errorf("Source = %q, want embedded:gobold", f.Source)
	}
	if f.Size != 28 {
		t.Errorf("Size = %d, want 28", f.Size)
	}
}

func TestLoadFace_NotAFont(t *testing.T) {
	withoutSystemFonts(t)

	path := filepath.Join(t.TempDir(), "fake.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := loadFile(path, 10); err != errNotFont {
		t.Errorf("loadFile() error = %v, want %v", err, errNotFont)
	}
	if f := LoadFace(path, 10, testLogger(t)); f.Source != "embedded:gobold" {
		t.Errorf("Source = %q, want embedded:gobold", f.Source)
	}
}

func TestLoadFace_EmptyPath(t *testing.T) {
	withoutSystemFonts(t)

	if f := LoadFace("", 12, testLogger(t)); f.Source != "embedded:gobold" {
		t.Errorf("Source = %q, want embedded:gobold", f.Source)
	}
}

func TestPen_Measurements(t *testing.T) {
	withoutSystemFonts(t)

	face := LoadFace("", 28, testLogger(t))
	c := NewCanvas(200, 100, color.NRGBA{0, 0, 0, 0})
	p := NewPen(c, face)

	if p.Face() != face {
		t.Error("Face() does not return face pen was created with")
	}
	if p.LineHeight() != 28 {
		t.Errorf("LineHeight() = %d, want 28", p.LineHeight())
	}
	if p.Width("") != 0 {
		t.Errorf("Width(\"\") = %v, want 0", p.Width(""))
	}
	wNS, wNSS := p.Width("NS"), p.Width("NSS")
	if wNS <= 0 || wNSS <= wNS {
		t.Errorf("unexpected widths: NS=%v NSS=%v", wNS, wNSS)
	}

	b := p.Bounds("NS", 10, 20)
	if b[0] > b[2] || b[1] > b[3] {
		t.Fatalf("malformed box %v", b)
	}
	if b[0] < 9 || b[1] < 19 || b[3] > 20+28+1 {
		t.Errorf("box %v is not anchored at (10, 20)", b)
	}

	moved := p.Bounds("NS", 110, 60)
	if moved[0]-b[0] != 100 || moved[1]-b[1] != 40 {
		t.Errorf("box does not follow origin: %v -> %v", b, moved)
	}
}

func TestPen_DrawText(t *testing.T) {
	withoutSystemFonts(t)

	c := NewCanvas(120, 60, color.NRGBA{0, 0, 0, 0})
	p := NewPen(c, LoadFace("", 32, testLogger(t)))
	p.DrawText("NS", 5, 5, color.NRGBA{189, 204, 223, 255})

	b := p.Bounds("NS", 5, 5)
	img := c.Image()
	painted := false
	for y := b[1]; y < b[3] && !painted; y++ {
		for x := b[0]; x < b[2]; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("no pixels were painted inside text box")
	}
	if _, _, _, a := img.At(119, 59).RGBA(); a != 0 {
		t.Error("background must stay transparent")
	}
}

func TestCanvas_StrokeRect(t *testing.T) {
	c := NewCanvas(50, 50, color.NRGBA{0, 0, 0, 0})
	c.StrokeRect(layout.BBox{10, 10, 30, 30}, color.NRGBA{255, 0, 0, 255}, 2)

	img := c.Image()
	if r, _, _, a := img.At(10, 20).RGBA(); a == 0 || r == 0 {
		t.Error("left edge is not painted")
	}
	if _, _, _, a := img.At(20, 20).RGBA(); a != 0 {
		t.Error("rectangle interior must stay untouched")
	}
	if _, _, _, a := img.At(8, 20).RGBA(); a != 0 {
		t.Error("outline leaked outside of rectangle")
	}
}
