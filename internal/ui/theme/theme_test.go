package theme

import (
	"image/color"
	"testing"
)

func TestForClass(t *testing.T) {
	tests := []struct {
		class string
		want  color.Color
	}{
		{"success", Success},
		{"info", Info},
		{"warning", Warning},
		{"error", Error},
		{"accent", Accent},
		{"muted", TextDim},
		{"", TextDim},
		{"unknown", TextDim},
	}

	for _, tt := range tests {
		if got := ForClass(tt.class); got != tt.want {
			t.Errorf("ForClass(%q) = %v, want %v", tt.class, got, tt.want)
		}
	}
}
