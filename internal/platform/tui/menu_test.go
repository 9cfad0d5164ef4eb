package tui

import (
	"strings"
	"testing"
)

func TestCenterTextUsesDisplayWidth(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   int
		padding int
	}{
		{"ascii", "abcd", 10, 3},
		// The surf emoji is 4 bytes but 2 cells wide; byte-length
		// centering would shift the row left.
		{"emoji glyph", "🏄 JAKE", 20, 6},
		{"wider than frame", "abcdef", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centerText(tt.text, tt.width)
			if !strings.HasSuffix(got, tt.text) {
				t.Fatalf("centerText(%q) = %q, text mangled", tt.text, got)
			}
			if pad := len(got) - len(tt.text); pad != tt.padding {
				t.Errorf("centerText(%q, %d) padding = %d, want %d", tt.text, tt.width, pad, tt.padding)
			}
		})
	}
}
