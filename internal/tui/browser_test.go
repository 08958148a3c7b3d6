package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termhue/termhue/internal/scheme"
)

func testRegistry(t *testing.T) *scheme.Registry {
	t.Helper()

	palette := func(base string) scheme.Palette {
		var p scheme.Palette
		for i := range p {
			p[i] = base
		}
		return p
	}

	r, err := scheme.NewRegistry(
		scheme.Scheme{Name: "dusk", Foreground: "#ffffff", Background: "#000000", Palette: palette("#111111")},
		scheme.Scheme{Name: "dawn", Foreground: "#000000", Background: "#ffffff", Palette: palette("#eeeeee")},
		scheme.Scheme{Name: "dusk_bright", Foreground: "#fafafa", Background: "#101010", Palette: palette("#222222")},
	)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	return r
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m BrowserModel, keys ...string) BrowserModel {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(BrowserModel)
		if !ok {
			t.Fatalf("Update returned unexpected model type %T", updated)
		}
	}
	return m
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowserModel(testRegistry(t), nil, 80, 24)

	if got := m.Highlighted(); got != "dusk" {
		t.Fatalf("initial highlight = %q, expected dusk", got)
	}

	m = press(t, m, "j")
	if got := m.Highlighted(); got != "dawn" {
		t.Errorf("after down, highlight = %q, expected dawn", got)
	}

	m = press(t, m, "j", "j", "j")
	if got := m.Highlighted(); got != "dusk_bright" {
		t.Errorf("cursor ran past the last scheme: %q", got)
	}

	m = press(t, m, "k", "k", "k", "k")
	if got := m.Highlighted(); got != "dusk" {
		t.Errorf("cursor ran past the first scheme: %q", got)
	}
}

func TestBrowserApplyWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	m := NewBrowserModel(testRegistry(t), &buf, 80, 24)

	m = press(t, m, "j", "enter")

	if got := m.Applied(); got != "dawn" {
		t.Fatalf("Applied() = %q, expected dawn", got)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b]4;") {
		t.Errorf("apply output missing palette sequence: %q", out)
	}
	if !strings.Contains(out, "\x1b]11;#ffffff\a") {
		t.Errorf("apply output missing background sequence: %q", out)
	}
}

func TestBrowserFilter(t *testing.T) {
	m := NewBrowserModel(testRegistry(t), nil, 80, 24)

	// Enter filtering mode and type a pattern.
	m = press(t, m, "/", "d", "u", "s", "k", "enter")

	if len(m.visible) != 2 {
		t.Fatalf("filter left %d schemes visible, expected 2", len(m.visible))
	}
	if m.visible[0] != "dusk" || m.visible[1] != "dusk_bright" {
		t.Errorf("filtered names = %v", m.visible)
	}

	// Esc clears the filter.
	m = press(t, m, "esc")
	if len(m.visible) != 3 {
		t.Errorf("after clearing filter, %d schemes visible, expected 3", len(m.visible))
	}
}

func TestBrowserFilterNoMatchesKeepsCursorValid(t *testing.T) {
	m := NewBrowserModel(testRegistry(t), nil, 80, 24)

	m = press(t, m, "j", "j", "/", "z", "z", "z", "enter")
	if got := m.Highlighted(); got != "" {
		t.Errorf("highlight with empty filter result = %q, expected empty", got)
	}

	// Applying with nothing highlighted is a no-op.
	m = press(t, m, "enter")
	if got := m.Applied(); got != "" {
		t.Errorf("Applied() = %q after empty apply", got)
	}
}

func TestBrowserViewShowsPreview(t *testing.T) {
	m := NewBrowserModel(testRegistry(t), nil, 80, 24)

	view := m.View()
	if !strings.Contains(view, "dusk | Foreground: #ffffff | Background: #000000") {
		t.Errorf("view missing preview title for highlighted scheme:\n%s", view)
	}
	if !strings.Contains(view, "dawn") {
		t.Errorf("view missing scheme list entry:\n%s", view)
	}
}
