package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testRegistry() *CommandRegistry {
	return NewCommandRegistry([]Command{
		{ID: "view.split.reset", Name: "Reset split", Execute: func(m *Model) tea.Cmd { return StatusCmd("reset") }},
		{ID: "export.start", Name: "Start export"},
		{ID: "transcript.regenerate", Name: "Regenerate voice",
			Scopes:   []string{"tab:transcript"},
			Disabled: func(m *Model) (bool, string) { return true, "nothing edited" }},
	})
}

func TestSearchScoping(t *testing.T) {
	reg := testRegistry()
	all := reg.Search("", "tab:transcript", nil)
	if len(all) != 3 {
		t.Fatalf("transcript scope: got %d results, want 3", len(all))
	}
	timeline := reg.Search("", "tab:timeline", nil)
	for _, r := range timeline {
		if r.CommandID == "transcript.regenerate" {
			t.Fatal("scoped command visible outside its scope")
		}
	}
}

func TestSearchRanksByDistance(t *testing.T) {
	reg := testRegistry()
	results := reg.Search("reset", "tab:transcript", nil)
	if len(results) == 0 || results[0].CommandID != "view.split.reset" {
		t.Fatalf("expected reset first, got %+v", results)
	}
}

func TestSearchDisabledSortLast(t *testing.T) {
	reg := testRegistry()
	results := reg.Search("", "tab:transcript", nil)
	last := results[len(results)-1]
	if !last.Disabled || last.CommandID != "transcript.regenerate" {
		t.Fatalf("disabled command not last: %+v", results)
	}
	if last.Reason != "nothing edited" {
		t.Fatalf("reason = %q", last.Reason)
	}
}

func TestExecute(t *testing.T) {
	reg := testRegistry()
	cmd := reg.Execute("view.split.reset", nil)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "reset" {
		t.Fatalf("unexpected msg %v", cmd())
	}

	cmd = reg.Execute("transcript.regenerate", nil)
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "nothing edited" {
		t.Fatalf("disabled command should surface its reason, got %v", cmd())
	}

	cmd = reg.Execute("nope", nil)
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "Unknown command: nope" {
		t.Fatalf("unknown command: got %v", cmd())
	}
}
