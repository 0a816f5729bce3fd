// Package common holds enums shared between configuration and rendering code
// so neither has to import the other just for a type.
package common

//go:generate go tool go-enum --names --marshal

import (
	"path/filepath"
	"strings"
)

// Output image encoding, derived from output file extension.
// ENUM(png, jpeg)
type ImageFormat int

// ImageFormatFromPath returns image format for output file name. Unknown or
// missing extensions produce an error so caller could decide on fallback.
func ImageFormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpg" {
		ext = ImageFormatJpeg.String()
	}
	return ParseImageFormat(ext)
}

// HasAlpha reports if format keeps transparency.
func (f ImageFormat) HasAlpha() bool {
	return f == ImageFormatPng
}
