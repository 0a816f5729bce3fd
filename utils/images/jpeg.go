// Package images has image encoding helpers not covered by imaging.
package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
)

type DpiType uint8

const (
	DpiNoUnits DpiType = iota
	DpiPxPerInch
	DpiPxPerSm
)

var (
	markerSOI  = []byte{0xFF, 0xD8}
	markerAPP0 = []byte{0xFF, 0xE0}
)

// EnsureJFIFAPP0 inserts JFIF APP0 segment with requested density right after
// SOI unless jpeg already starts with one. Standard library encoder never
// writes it and decal tools assume 72 dpi then.
func EnsureJFIFAPP0(jpegData []byte, dpit DpiType, xdensity, ydensity int16) ([]byte, bool, error) {
	if len(jpegData) < 4 {
		return nil, false, errors.New("jpeg too small")
	}
	if !bytes.Equal(jpegData[:2], markerSOI) {
		return nil, false, errors.New("not a jpeg")
	}
	if bytes.Equal(jpegData[2:4], markerAPP0) {
		return jpegData, false, nil
	}

	seg := struct {
		Marker   [2]byte
		Length   uint16
		Ident    [5]byte
		Version  [2]byte
		Units    uint8
		XDensity uint16
		YDensity uint16
		XThumb   uint8
		YThumb   uint8
	}{
		Marker:   [2]byte{markerAPP0[0], markerAPP0[1]},
		Length:   16,
		Ident:    [5]byte{'J', 'F', 'I', 'F', 0},
		Version:  [2]byte{1, 2},
		Units:    uint8(dpit),
		XDensity: uint16(xdensity),
		YDensity: uint16(ydensity),
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(jpegData)+18))
	buf.Write(jpegData[:2])
	if err := binary.Write(buf, binary.BigEndian, &seg); err != nil {
		return nil, false, err
	}
	buf.Write(jpegData[2:])
	return buf.Bytes(), true, nil
}

// EncodeJPEGWithDPI encodes image and stamps pixels per inch density into it.
func EncodeJPEGWithDPI(img image.Image, quality int, dpi int16) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	out, _, err := EnsureJFIFAPP0(buf.Bytes(), DpiPxPerInch, dpi, dpi)
	if err != nil {
		return nil, err
	}
	return out, nil
}
