package raster

import (
	"errors"
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Face is font face of a particular pixel size.
type Face struct {
	font.Face
	// Size is requested size in pixels, it is used as nominal line height.
	Size int
	// Source describes where face came from.
	Source string
}

// Candidates tried when requested font could not be loaded, in order.
var fallbackPaths = []string{
	"DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/DejaVuSans.ttf",
	`C:\Windows\Fonts\DejaVuSans.ttf`,
}

var errNotFont = errors.New("not a TrueType or OpenType font")

// LoadFace never fails. It tries requested file first, then well known
// DejaVu Sans locations, then Go Bold embedded into the program and finally
// fixed 7x13 bitmap face.
func LoadFace(path string, size int, log *zap.Logger) *Face {
	if len(path) > 0 {
		f, err := loadFile(path, size)
		if err == nil {
			log.Debug("Font loaded", zap.String("path", path), zap.Int("size", size))
			return f
		}
		log.Warn("Unable to load font, looking for replacement", zap.String("path", path), zap.Error(err))
	}

	for _, p := range fallbackPaths {
		if f, err := loadFile(p, size); err == nil {
			log.Warn("Using fallback font", zap.String("path", p), zap.Int("size", size))
			return f
		}
	}

	f, err := parseFace(gobold.TTF, size)
	if err == nil {
		f.Source = "embedded:gobold"
		log.Warn("Using embedded font", zap.String("font", f.Source), zap.Int("size", size))
		return f
	}
	log.Warn("Unable to parse embedded font", zap.Error(err))

	log.Warn("Using basic bitmap font, requested size ignored", zap.Int("size", size))
	return &Face{Face: basicfont.Face7x13, Size: size, Source: "basicfont:7x13"}
}

func loadFile(path string, size int) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !filetype.Is(data, "ttf") && !filetype.Is(data, "otf") {
		return nil, errNotFont
	}
	f, err := parseFace(data, size)
	if err != nil {
		return nil, err
	}
	f.Source = path
	return f, nil
}

func parseFace(data []byte, size int) (*Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // points are pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create font face: %w", err)
	}
	return &Face{Face: face, Size: size}, nil
}
