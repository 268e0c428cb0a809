package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"scribedeck/core"
	"scribedeck/internal/config"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	case "esc":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEscape})
	case "down":
		return tea.KeyMsg(tea.Key{Type: tea.KeyDown})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func paletteFixture() (*CommandScreen, core.Model) {
	reg := core.NewCommandRegistry([]core.Command{
		{ID: "view.split.reset", Name: "Reset split", Description: "Return the split to 50/50"},
		{ID: "export.start", Name: "Start export"},
		{ID: "transcript.regenerate", Name: "Regenerate voice",
			Disabled: func(m *core.Model) (bool, string) { return true, "nothing edited" }},
	})
	m := core.NewModel(nil, core.NewKeyRegistry(core.DefaultKeyBindings()), reg, config.Config{}, nil, nil)
	return NewCommandScreen(&m, "tab:transcript"), m
}

func TestPaletteEnterExecutesSelection(t *testing.T) {
	s, _ := paletteFixture()
	_, cmd, pop := s.Update(keyMsg("enter"))
	if !pop {
		t.Fatal("enter should close the palette")
	}
	if cmd == nil {
		t.Fatal("enter should emit an execute message")
	}
	exec, ok := cmd().(core.CommandExecuteMsg)
	if !ok || exec.CommandID != "view.split.reset" {
		t.Fatalf("got %v, want view.split.reset", cmd())
	}
}

func TestPaletteEscCloses(t *testing.T) {
	s, _ := paletteFixture()
	_, cmd, pop := s.Update(keyMsg("esc"))
	if !pop || cmd != nil {
		t.Fatal("esc should pop without executing")
	}
}

func TestPaletteTypingFilters(t *testing.T) {
	s, _ := paletteFixture()
	for _, r := range "export" {
		s.Update(keyMsg(string(r)))
	}
	if len(s.results) != 1 || s.results[0].CommandID != "export.start" {
		t.Fatalf("results = %+v", s.results)
	}
	for _, r := range "zzz" {
		s.Update(keyMsg(string(r)))
	}
	if len(s.results) != 0 {
		t.Fatalf("expected no matches, got %+v", s.results)
	}
	if !strings.Contains(s.View(80, 20), "No matching commands") {
		t.Fatal("empty state missing")
	}
}

func TestPaletteDisabledNotExecutable(t *testing.T) {
	s, _ := paletteFixture()
	// Disabled commands sort last; walk the cursor onto it.
	for i := 0; i < len(s.results)-1; i++ {
		s.Update(keyMsg("down"))
	}
	if !s.results[s.cursor].Disabled {
		t.Fatalf("cursor not on disabled command: %+v", s.results[s.cursor])
	}
	_, cmd, pop := s.Update(keyMsg("enter"))
	if pop || cmd != nil {
		t.Fatal("enter on a disabled command should do nothing")
	}
	if !strings.Contains(s.View(80, 20), "nothing edited") {
		t.Fatal("disabled reason not shown")
	}
}
