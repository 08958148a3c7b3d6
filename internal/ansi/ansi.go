// Package ansi builds the terminal control sequences used to set and
// preview color schemes: OSC sequences that re-program the terminal's
// palette and default colors, and 24-bit SGR sequences for rendering
// previews.
package ansi

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/termhue/termhue/internal/scheme"
)

// Escape sequence pieces. OSC 4 sets palette slots, OSC 10/11 set the
// default foreground/background; both are BEL-terminated.
const (
	oscPalette    = "\x1b]4;"
	oscForeground = "\x1b]10;"
	oscBackground = "\x1b]11;"
	bel           = "\a"

	// Reset is the SGR reset, emitted after every styled segment.
	Reset = "\x1b[0m"
)

// ErrInvalidColor is returned when a color value is not a 6-digit hex
// string (with optional leading '#').
var ErrInvalidColor = errors.New("invalid hex color")

// RGB is a decoded 24-bit color.
type RGB struct {
	R, G, B uint8
}

// HexToRGB decodes "#rrggbb" (the '#' is optional) into an RGB triple.
func HexToRGB(hex string) (RGB, error) {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex re-encodes the triple as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SetPalette returns the OSC 4 sequence that programs all 16 palette
// slots in one request: "ESC]4;0;#hex;1;#hex;...;15;#hex BEL".
func SetPalette(p scheme.Palette) string {
	var b strings.Builder
	b.WriteString(oscPalette)
	for i, hex := range p {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(';')
		b.WriteString(hex)
	}
	b.WriteString(bel)
	return b.String()
}

// SetForeground returns the OSC 10 sequence setting the default
// foreground color.
func SetForeground(hex string) string {
	return oscForeground + hex + bel
}

// SetBackground returns the OSC 11 sequence setting the default
// background color.
func SetBackground(hex string) string {
	return oscBackground + hex + bel
}

// Foreground returns the 24-bit SGR foreground sequence for c.
func Foreground(c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Background returns the 24-bit SGR background sequence for c.
func Background(c RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ApplyString returns the full byte sequence that applies s to the
// terminal: the palette-set line followed by a line carrying the
// foreground and background OSC sequences.
func ApplyString(s scheme.Scheme) string {
	return SetPalette(s.Palette) + "\n" +
		SetForeground(s.Foreground) + SetBackground(s.Background) + "\n"
}

// Apply writes the apply sequence for s to w.
func Apply(w io.Writer, s scheme.Scheme) error {
	_, err := io.WriteString(w, ApplyString(s))
	return err
}
