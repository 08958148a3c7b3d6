// Package preview renders human-readable palette previews for color
// schemes using 24-bit SGR styling. A preview block shows the scheme
// title styled in its own colors, its 16 palette entries as foreground
// samples over the scheme background, and the 8 normal colors again as
// background samples under the scheme foreground.
package preview

import (
	"io"
	"strings"

	"github.com/termhue/termhue/internal/ansi"
	"github.com/termhue/termhue/internal/scheme"
)

// titleWidth is the visual width the styled title line is padded to.
const titleWidth = 83

// rgbScheme is a scheme with every color decoded for truecolor output.
type rgbScheme struct {
	foreground ansi.RGB
	background ansi.RGB
	palette    [16]ansi.RGB
}

func decode(s scheme.Scheme) (rgbScheme, error) {
	var rs rgbScheme
	var err error
	if rs.foreground, err = ansi.HexToRGB(s.Foreground); err != nil {
		return rgbScheme{}, err
	}
	if rs.background, err = ansi.HexToRGB(s.Background); err != nil {
		return rgbScheme{}, err
	}
	for i, hex := range s.Palette {
		if rs.palette[i], err = ansi.HexToRGB(hex); err != nil {
			return rgbScheme{}, err
		}
	}
	return rs, nil
}

// pad returns count spaces, or nothing when the title already fills the
// width budget.
func pad(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(" ", count)
}

// Block renders the preview block for s. The returned string ends with
// a newline but carries no trailing blank separator line.
func Block(s scheme.Scheme) (string, error) {
	rs, err := decode(s)
	if err != nil {
		return "", err
	}

	fg := ansi.Foreground(rs.foreground)
	bg := ansi.Background(rs.background)

	var b strings.Builder

	// Title line in the scheme's own foreground on background.
	title := s.Name + " | Foreground: " + s.Foreground + " | Background: " + s.Background
	b.WriteString("  " + fg + bg + " " + title + pad(titleWidth-len(title)) + ansi.Reset + "\n")

	// Normal and Bright rows: each palette color as text over the
	// scheme background.
	b.WriteString("  " + fg + bg + " Normal     ")
	for i, hex := range s.Palette {
		b.WriteString(ansi.Foreground(rs.palette[i]) + bg + " " + hex + " ")
		if i == 7 {
			b.WriteString(ansi.Reset + "\n")
			b.WriteString("  " + fg + bg + " Bright     ")
		}
	}
	b.WriteString(ansi.Reset + "\n")

	// Background row: scheme foreground over each normal color.
	b.WriteString("  " + fg + bg + " Background ")
	for i := 0; i < 8; i++ {
		b.WriteString(fg + ansi.Background(rs.palette[i]) + " " + s.Palette[i] + " ")
	}
	b.WriteString(ansi.Reset + "\n")

	return b.String(), nil
}

// WriteBlocks writes one leading blank line, then the preview block of
// every scheme followed by a blank separator line.
func WriteBlocks(w io.Writer, schemes []scheme.Scheme) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, s := range schemes {
		block, err := Block(s)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, block+"\n"); err != nil {
			return err
		}
	}
	return nil
}
