// Package screens holds the modal layers pushed over tabs: currently
// the command palette.
package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scribedeck/core"
)

const maxVisibleResults = 8

var (
	paletteTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	resultNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	resultDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	resultDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")).Strikethrough(true)
	resultCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

// CommandScreen is the fuzzy command palette. It searches the registry
// scoped to the tab that opened it and emits a CommandExecuteMsg on
// selection.
type CommandScreen struct {
	input    textinput.Model
	registry *core.CommandRegistry
	scope    string
	model    *core.Model
	results  []core.CommandResult
	cursor   int
}

func NewCommandScreen(m *core.Model, scope string) *CommandScreen {
	ti := textinput.New()
	ti.Placeholder = "Type a command"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()
	s := &CommandScreen{
		input:    ti,
		registry: m.CommandRegistry(),
		scope:    scope,
		model:    m,
	}
	s.refresh()
	return s
}

func (s *CommandScreen) Scope() string { return "screen:command" }
func (s *CommandScreen) Title() string { return "Commands" }

func (s *CommandScreen) refresh() {
	s.results = s.registry.Search(s.input.Value(), s.scope, s.model)
	if s.cursor >= len(s.results) {
		s.cursor = len(s.results) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}
	switch key.String() {
	case "esc", "ctrl+k":
		return s, nil, true
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case "down", "ctrl+n":
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
		return s, nil, false
	case "enter":
		if s.cursor >= len(s.results) {
			return s, nil, true
		}
		picked := s.results[s.cursor]
		if picked.Disabled {
			return s, nil, false
		}
		id := picked.CommandID
		return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(key)
	s.refresh()
	return s, cmd, false
}

func (s *CommandScreen) View(width, height int) string {
	w := min(width, 56)
	var b strings.Builder
	b.WriteString(paletteTitleStyle.Render("Commands"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(resultDescStyle.Render("No matching commands"))
		return b.String()
	}
	shown := s.results
	offset := 0
	if s.cursor >= maxVisibleResults {
		offset = s.cursor - maxVisibleResults + 1
	}
	if offset+maxVisibleResults < len(shown) {
		shown = shown[offset : offset+maxVisibleResults]
	} else {
		shown = shown[offset:]
	}
	for i, r := range shown {
		cursor := "  "
		if offset+i == s.cursor {
			cursor = resultCursorStyle.Render("▸ ")
		}
		name := resultNameStyle.Render(r.Name)
		desc := r.Desc
		if r.Disabled {
			name = resultDisabledStyle.Render(r.Name)
			if r.Reason != "" {
				desc = r.Reason
			}
		}
		line := cursor + name
		if desc != "" {
			line += resultDescStyle.Render("  " + desc)
		}
		b.WriteString(ansi.Truncate(line, w, "…"))
		b.WriteString("\n")
	}
	if len(s.results) > maxVisibleResults {
		b.WriteString(resultDescStyle.Render("…"))
	}
	return strings.TrimRight(b.String(), "\n")
}
