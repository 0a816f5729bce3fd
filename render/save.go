package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"repmark/common"
	"repmark/config"
	"repmark/utils/images"
)

// exportBase returns base name for bounding boxes files: output image name
// without extension, in the same directory.
func exportBase(output string) string {
	stem := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	return filepath.Join(filepath.Dir(output), config.CleanFileName(stem))
}

// saveImage encodes canvas according to output file extension. Anything not
// recognized is written as PNG.
func saveImage(img image.Image, out *config.OutputConfig, log *zap.Logger) error {
	format, err := common.ImageFormatFromPath(out.Path)
	if err != nil {
		log.Warn("Unable to detect output image format, using png", zap.String("path", out.Path), zap.Error(err))
		format = common.ImageFormatPng
	}

	if err := os.MkdirAll(filepath.Dir(out.Path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	data, err := encodeImage(img, format, out, log)
	if err != nil {
		return fmt.Errorf("unable to encode output image: %w", err)
	}
	if err := os.WriteFile(out.Path, data, 0644); err != nil {
		return fmt.Errorf("unable to save output image: %w", err)
	}
	log.Debug("Image saved", zap.String("path", out.Path), zap.Stringer("format", format), zap.Int("size", len(data)))
	return nil
}

func encodeImage(img image.Image, format common.ImageFormat, out *config.OutputConfig, log *zap.Logger) ([]byte, error) {
	if format.HasAlpha() {
		if out.DPI > 0 {
			log.Debug("DPI is only recorded for jpeg output, ignoring", zap.Int("dpi", out.DPI))
		}
		return encode(img, imaging.PNG)
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
		log.Warn("Output format does not support transparency, flattening onto white", zap.Stringer("format", format))
	}
	b := img.Bounds()
	flat := imaging.Overlay(imaging.New(b.Dx(), b.Dy(), color.White), img, image.Point{}, 1.0)

	if out.DPI > 0 {
		return images.EncodeJPEGWithDPI(flat, out.JPEGQuality, int16(out.DPI))
	}
	return encode(flat, imaging.JPEG, imaging.JPEGQuality(out.JPEGQuality))
}

func encode(img image.Image, format imaging.Format, opts ...imaging.EncodeOption) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
