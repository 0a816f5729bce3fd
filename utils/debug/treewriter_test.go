package debug

import "testing"

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "side (%d)", []any{13}, "side (13)\n"},
		{"nested", 2, "bbox: %s", []any{"(1, 2, 3, 4)"}, "    bbox: (1, 2, 3, 4)\n"},
		{"negative depth", -1, "end", nil, "end\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		value string
		want  string
	}{
		{"empty value", 0, "", "entry: \n"},
		{"inner space", 1, "NS 999286", "  entry: \"NS 999286\"\n"},
		{"trailing space", 1, "NS ", "  entry: \"NS \"\n"},
		{"tab and quote", 0, "a\t\"b\"", "entry: \"a\\t\\\"b\\\"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, "entry", tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Accumulates(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "end (1)")
	tw.TextBlock(1, "entry 0", "SOLO")
	tw.Line(2, "placement: %s", "single")

	want := "end (1)\n  entry 0: \"SOLO\"\n    placement: single\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
