package common

import "testing"

func TestImageFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    ImageFormat
		wantErr bool
	}{
		{"decalresult.png", ImageFormatPng, false},
		{"out/Sheet.PNG", ImageFormatPng, false},
		{"sheet.jpg", ImageFormatJpeg, false},
		{"sheet.jpeg", ImageFormatJpeg, false},
		{"sheet.webp", ImageFormatPng, true},
		{"sheet", ImageFormatPng, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ImageFormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ImageFormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ImageFormatFromPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageFormat_HasAlpha(t *testing.T) {
	if !ImageFormatPng.HasAlpha() || ImageFormatJpeg.HasAlpha() {
		t.Error("only png keeps transparency")
	}
}
