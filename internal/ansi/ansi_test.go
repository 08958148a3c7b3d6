package ansi

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/termhue/termhue/internal/scheme"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RGB
	}{
		{"with hash", "#ff00ff", RGB{255, 0, 255}},
		{"without hash", "ff00ff", RGB{255, 0, 255}},
		{"black", "#000000", RGB{0, 0, 0}},
		{"white", "#ffffff", RGB{255, 255, 255}},
		{"uppercase", "#FF8800", RGB{255, 136, 0}},
		{"catppuccin background", "#1e1e2e", RGB{30, 30, 46}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HexToRGB(tc.input)
			if err != nil {
				t.Fatalf("HexToRGB(%q) returned error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("HexToRGB(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHexToRGBInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bare hash", "#"},
		{"too short", "#fff"},
		{"too long", "#ff00ff0"},
		{"non-hex digits", "#gggggg"},
		{"embedded space", "#ff 0ff"},
		{"negative sign", "-ff00f"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := HexToRGB(tc.input)
			if err == nil {
				t.Fatalf("HexToRGB(%q) succeeded, expected error", tc.input)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("HexToRGB(%q) error = %v, expected ErrInvalidColor", tc.input, err)
			}
		})
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#1e1e2e", "#f38ba8", "#cdd6f4", "#0a0b0c"}

	for _, hex := range inputs {
		c, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q) returned error: %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("round trip of %q produced %q", hex, got)
		}
	}
}

func testScheme() scheme.Scheme {
	return scheme.Scheme{
		Name:       "mocha",
		Foreground: "#cdd6f4",
		Background: "#1e1e2e",
		Palette: scheme.Palette{
			"#45475a", "#f38ba8", "#a6e3a1", "#f9e2af",
			"#89b4fa", "#f5c2e7", "#94e2d5", "#a6adc8",
			"#585b70", "#f37799", "#89d88b", "#ebd391",
			"#74a8fc", "#f2aede", "#6bd7ca", "#bac2de",
		},
	}
}

func TestSetPalette(t *testing.T) {
	s := testScheme()
	seq := SetPalette(s.Palette)

	if !strings.HasPrefix(seq, "\x1b]4;") {
		t.Errorf("palette sequence missing OSC 4 prefix: %q", seq)
	}
	if !strings.HasSuffix(seq, "\a") {
		t.Errorf("palette sequence missing BEL terminator: %q", seq)
	}

	// Body must carry exactly 16 index;color pairs in order.
	body := strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b]4;"), "\a")
	parts := strings.Split(body, ";")
	if len(parts) != 32 {
		t.Fatalf("expected 32 semicolon-separated fields, got %d: %q", len(parts), body)
	}
	for i := 0; i < 16; i++ {
		index, color := parts[2*i], parts[2*i+1]
		if index != strconv.Itoa(i) {
			t.Errorf("pair %d has index %q", i, index)
		}
		if color != s.Palette[i] {
			t.Errorf("pair %d has color %q, expected %q", i, color, s.Palette[i])
		}
	}

	if !strings.Contains(seq, "1;#f38ba8") {
		t.Errorf("palette sequence missing pair for slot 1: %q", seq)
	}
}

func TestSetForegroundBackground(t *testing.T) {
	if got := SetForeground("#cdd6f4"); got != "\x1b]10;#cdd6f4\a" {
		t.Errorf("SetForeground = %q", got)
	}
	if got := SetBackground("#1e1e2e"); got != "\x1b]11;#1e1e2e\a" {
		t.Errorf("SetBackground = %q", got)
	}
}

func TestTruecolorSequences(t *testing.T) {
	c := RGB{255, 0, 255}
	if got := Foreground(c); got != "\x1b[38;2;255;0;255m" {
		t.Errorf("Foreground = %q", got)
	}
	if got := Background(c); got != "\x1b[48;2;255;0;255m" {
		t.Errorf("Background = %q", got)
	}
	if Reset != "\x1b[0m" {
		t.Errorf("Reset = %q", Reset)
	}
}

func TestApply(t *testing.T) {
	s := testScheme()

	var buf bytes.Buffer
	if err := Apply(&buf, s); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	out := buf.String()

	lines := strings.SplitN(out, "\n", 3)
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("expected two newline-terminated lines, got %q", out)
	}
	if lines[0] != SetPalette(s.Palette) {
		t.Errorf("first line is not the palette sequence: %q", lines[0])
	}
	if lines[1] != SetForeground(s.Foreground)+SetBackground(s.Background) {
		t.Errorf("second line is not fg+bg: %q", lines[1])
	}
	if !strings.Contains(out, "1;#f38ba8") {
		t.Errorf("apply output missing palette slot 1: %q", out)
	}
	if !strings.Contains(out, "\x1b]11;#1e1e2e\a") {
		t.Errorf("apply output missing background sequence: %q", out)
	}
}
