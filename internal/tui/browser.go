// Package tui provides the interactive scheme browser and its SSH
// server front end.
package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termhue/termhue/internal/ansi"
	"github.com/termhue/termhue/internal/preview"
	"github.com/termhue/termhue/internal/scheme"
)

// Chrome styles for the browser. The preview pane itself uses raw
// truecolor sequences so it shows the scheme's exact colors.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// BrowserKeyMap defines the key bindings for the scheme browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Filter key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Apply, k.Filter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Apply},
		{k.Filter, k.Clear, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous scheme"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next scheme"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply scheme"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the scheme browser. Moving
// the cursor shows a live preview block; applying a scheme writes its
// control sequences straight to out, so the surrounding terminal
// re-colors while the browser stays open.
type BrowserModel struct {
	registry *scheme.Registry
	out      io.Writer

	visible   []string
	cursor    int
	filter    textinput.Model
	filtering bool

	width   int
	height  int
	keys    BrowserKeyMap
	help    help.Model
	applied string
	errMsg  string

	quitting bool
}

// NewBrowserModel creates a browser over the given registry. Sequences
// emitted by the apply action are written to out; a nil out records the
// applied scheme without emitting anything.
func NewBrowserModel(registry *scheme.Registry, out io.Writer, width, height int) BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "pattern"
	filter.Prompt = "/"
	filter.CharLimit = 64

	return BrowserModel{
		registry: registry,
		out:      out,
		visible:  registry.Names(),
		filter:   filter,
		width:    width,
		height:   height,
		keys:     DefaultBrowserKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is focused, keys feed the input except
	// for the few that leave filtering mode.
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.refilter()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.filter.SetValue("")
		m.refilter()

	case key.Matches(msg, m.keys.Apply):
		m.apply()
	}

	return m, nil
}

// refilter recomputes the visible names from the filter text, treating
// it as a regular expression when it compiles and as a literal
// substring otherwise.
func (m *BrowserModel) refilter() {
	pattern := m.filter.Value()
	if pattern == "" {
		m.visible = m.registry.Names()
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			re = regexp.MustCompile(regexp.QuoteMeta(pattern))
		}
		matched := m.registry.Match(re)
		m.visible = make([]string, len(matched))
		for i, s := range matched {
			m.visible[i] = s.Name
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// apply emits the highlighted scheme's control sequences.
func (m *BrowserModel) apply() {
	name := m.Highlighted()
	if name == "" {
		return
	}
	s, err := m.registry.Lookup(name)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.out != nil {
		if err := ansi.Apply(m.out, s); err != nil {
			m.errMsg = err.Error()
			return
		}
	}
	m.applied = name
	m.errMsg = ""
}

// Highlighted returns the name under the cursor, or "" when the filter
// matches nothing.
func (m BrowserModel) Highlighted() string {
	if len(m.visible) == 0 {
		return ""
	}
	return m.visible[m.cursor]
}

// Applied returns the name of the last applied scheme, or "".
func (m BrowserModel) Applied() string {
	return m.applied
}

// listHeight returns how many scheme names fit above the preview pane.
func (m BrowserModel) listHeight() int {
	// Chrome: title, filter line, blank, 5 preview lines, status, help.
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("termhue — scheme browser"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	// Window of names around the cursor.
	visible := m.visible
	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(visible[i]))
		} else {
			b.WriteString("  " + visible[i])
		}
		b.WriteString("\n")
	}
	if len(visible) == 0 {
		b.WriteString("  (no schemes match)\n")
	}
	b.WriteString("\n")

	// Preview pane for the highlighted scheme.
	if name := m.Highlighted(); name != "" {
		if s, err := m.registry.Lookup(name); err == nil {
			if block, err := preview.Block(s); err == nil {
				b.WriteString(block)
			}
		}
	}

	switch {
	case m.errMsg != "":
		b.WriteString(statusStyle.Render("error: " + m.errMsg))
	case m.applied != "":
		b.WriteString(statusStyle.Render(fmt.Sprintf("applied %s", m.applied)))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunBrowser runs the browser against the real terminal. Applied
// sequences go to out (normally stdout) so the terminal re-colors
// live. Returns the last applied scheme name, or "".
func RunBrowser(registry *scheme.Registry, out io.Writer, width, height int) (string, error) {
	model := NewBrowserModel(registry, out, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("browser error: %w", err)
	}

	browser, ok := finalModel.(BrowserModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", finalModel)
	}
	return browser.Applied(), nil
}
