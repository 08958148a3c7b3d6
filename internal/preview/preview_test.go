package preview

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/termhue/termhue/internal/ansi"
	"github.com/termhue/termhue/internal/scheme"
)

func testScheme(name string) scheme.Scheme {
	return scheme.Scheme{
		Name:       name,
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

func TestBlockLayout(t *testing.T) {
	block, err := Block(testScheme("mocha"))
	if err != nil {
		t.Fatalf("Block returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("block has %d lines, expected 4 (title, normal, bright, background)", len(lines))
	}

	title := "mocha | Foreground: #cdd6f4 | Background: #1e1e2e"
	if !strings.Contains(lines[0], title) {
		t.Errorf("title line missing title text: %q", lines[0])
	}
	// Padded so the styled segment reaches 83 visible characters.
	padded := " " + title + strings.Repeat(" ", 83-len(title)) + ansi.Reset
	if !strings.Contains(lines[0], padded) {
		t.Errorf("title line not padded to width 83: %q", lines[0])
	}

	if !strings.Contains(lines[1], " Normal     ") {
		t.Errorf("second line missing Normal label: %q", lines[1])
	}
	if !strings.Contains(lines[2], " Bright     ") {
		t.Errorf("third line missing Bright label: %q", lines[2])
	}
	if !strings.Contains(lines[3], " Background ") {
		t.Errorf("fourth line missing Background label: %q", lines[3])
	}

	// Normal row shows slots 0-7 as truecolor foregrounds over the
	// scheme background; bright row shows 8-15.
	s := testScheme("mocha")
	for i := 0; i < 8; i++ {
		c, _ := ansi.HexToRGB(s.Palette[i])
		if !strings.Contains(lines[1], ansi.Foreground(c)) {
			t.Errorf("normal row missing foreground sequence for slot %d", i)
		}
		if !strings.Contains(lines[1], " "+s.Palette[i]+" ") {
			t.Errorf("normal row missing hex cell for slot %d", i)
		}
	}
	for i := 8; i < 16; i++ {
		c, _ := ansi.HexToRGB(s.Palette[i])
		if !strings.Contains(lines[2], ansi.Foreground(c)) {
			t.Errorf("bright row missing foreground sequence for slot %d", i)
		}
	}

	// Background row uses the palette colors as backgrounds.
	for i := 0; i < 8; i++ {
		c, _ := ansi.HexToRGB(s.Palette[i])
		if !strings.Contains(lines[3], ansi.Background(c)) {
			t.Errorf("background row missing background sequence for slot %d", i)
		}
	}

	for i, line := range lines {
		if !strings.HasSuffix(line, ansi.Reset) {
			t.Errorf("line %d does not end with a style reset: %q", i, line)
		}
	}
}

func TestBlockLongNameDoesNotPanic(t *testing.T) {
	long := strings.Repeat("very_long_scheme_name_", 5)
	block, err := Block(testScheme(long))
	if err != nil {
		t.Fatalf("Block returned error: %v", err)
	}
	// Pad is clamped; the title is followed directly by the reset.
	if !strings.Contains(block, long) {
		t.Errorf("block missing long title: %q", block)
	}
}

func TestBlockInvalidColor(t *testing.T) {
	s := testScheme("broken")
	s.Palette[3] = "#zzzzzz"

	_, err := Block(s)
	if err == nil {
		t.Fatal("Block succeeded on malformed palette entry")
	}
	if !errors.Is(err, ansi.ErrInvalidColor) {
		t.Errorf("error = %v, expected ErrInvalidColor", err)
	}
}

func TestWriteBlocks(t *testing.T) {
	var buf bytes.Buffer
	schemes := []scheme.Scheme{testScheme("first"), testScheme("second")}

	if err := WriteBlocks(&buf, schemes); err != nil {
		t.Fatalf("WriteBlocks returned error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\n") {
		t.Error("output missing leading blank line")
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Error("output missing trailing blank separator")
	}
	if strings.Count(out, "first | Foreground:") != 1 {
		t.Error("missing block for first scheme")
	}
	if strings.Count(out, "second | Foreground:") != 1 {
		t.Error("missing block for second scheme")
	}
}

func TestWriteBlocksEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBlocks(&buf, nil); err != nil {
		t.Fatalf("WriteBlocks returned error: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("expected only the leading blank line, got %q", buf.String())
	}
}
