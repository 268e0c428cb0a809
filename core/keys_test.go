package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestScopeMatch(t *testing.T) {
	cases := []struct {
		scope  string
		scopes []string
		want   bool
	}{
		{"tab:transcript", nil, true},
		{"tab:transcript", []string{"*"}, true},
		{"tab:transcript", []string{"tab:transcript"}, true},
		{"tab:timeline", []string{"tab:transcript"}, false},
		{"screen:command", []string{"tab:transcript", "screen:command"}, true},
	}
	for _, tc := range cases {
		if got := scopeMatch(tc.scope, tc.scopes); got != tc.want {
			t.Errorf("scopeMatch(%q, %v) = %v, want %v", tc.scope, tc.scopes, got, tc.want)
		}
	}
}

func TestIsActionRespectsScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"r"}, Action: "regenerate", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(keyMsg("r"), "regenerate", "tab:transcript") {
		t.Fatal("r should be regenerate in its scope")
	}
	if reg.IsAction(keyMsg("r"), "regenerate", "tab:timeline") {
		t.Fatal("r should not leak into another scope")
	}
	if !reg.IsAction(keyMsg("q"), "quit", "tab:timeline") {
		t.Fatal("wildcard binding should match every scope")
	}
	if reg.IsAction(keyMsg("x"), "quit", "tab:timeline") {
		t.Fatal("unbound key reported as action")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	transcript := reg.BindingsForScope("tab:transcript")
	found := false
	for _, b := range transcript {
		if b.Action == "split-reset" {
			found = true
		}
		if b.Action == "seek-back" {
			t.Fatal("timeline binding leaked into transcript scope")
		}
	}
	if !found {
		t.Fatal("split-reset missing from transcript scope")
	}
}
