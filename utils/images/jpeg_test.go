package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestEnsureJFIFAPP0(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		added bool
	}{
		{"missing marker", []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04}, true},
		{"marker present", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, added, err := EnsureJFIFAPP0(tt.data, DpiPxPerInch, 300, 300)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if added != tt.added {
				t.Fatalf("added = %v, want %v", added, tt.added)
			}
			if !bytes.Equal(out[:4], []byte{0xFF, 0xD8, 0xFF, 0xE0}) {
				t.Errorf("expected SOI followed by APP0, got % x", out[:4])
			}
			if !tt.added && !bytes.Equal(out, tt.data) {
				t.Error("data with marker must be returned unchanged")
			}
			if tt.added && len(out) != len(tt.data)+18 {
				t.Errorf("output length = %d, want %d", len(out), len(tt.data)+18)
			}
		})
	}
}

func TestEncodeJPEGWithDPI(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	out, err := EncodeJPEGWithDPI(img, 90, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out[2:4], []byte{0xFF, 0xE0}) {
		t.Fatal("expected JFIF APP0 marker at position 2-3")
	}
	// units, then big endian densities
	if out[13] != byte(DpiPxPerInch) || out[14] != 0x01 || out[15] != 0x2C {
		t.Fatalf("unexpected density bytes: % x", out[13:18])
	}
	if _, err := jpeg.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("result is not a valid jpeg: %v", err)
	}
}

func TestEnsureJFIFAPP0_Invalid(t *testing.T) {
	if _, _, err := EnsureJFIFAPP0([]byte{0xFF}, DpiPxPerInch, 1, 1); err == nil {
		t.Error("expected error for short data")
	}
	if _, _, err := EnsureJFIFAPP0([]byte{0x89, 0x50, 0x4E, 0x47}, DpiPxPerInch, 1, 1); err == nil {
		t.Error("expected error for non jpeg data")
	}
}
