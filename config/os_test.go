package config

import (
	"os"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		in, want string
	}{
		{"decalresult", "decalresult"},
		{"sheet.v2", "sheet.v2"},
		{"a" + sep + "b", "ab"},
		{"..hidden", "hidden"},
		{"  spaced  ", "spaced"},
		{"tab\there", "tabhere"},
		{"", badFileName},
		{"...", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnableColorOutput_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if EnableColorOutput(os.Stdout) {
		t.Error("color output must be disabled when NO_COLOR is set")
	}
}
