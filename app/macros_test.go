package app

import (
	"strings"
	"testing"

	"scribedeck/core"
	"scribedeck/internal/macro"
	"scribedeck/internal/transcript"
)

func macroFixture(t *testing.T) (*MacrosTab, core.Model) {
	t.Helper()
	cfg := testConfig()
	macros := []macro.Macro{
		{Name: "de-um", Description: "strip um", Rules: []macro.Rule{{Find: "um, ", Replace: ""}}},
		{Name: "noop", Description: "never matches", Rules: []macro.Rule{{Find: "zzzz", Replace: ""}}},
	}
	tab := NewMacrosTab(macros)
	sess := transcript.NewMockSession()
	sess.Segments[0].Text = "Well um, here we go."
	m := core.NewModel(
		[]core.Tab{tab},
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		cfg,
		sess,
		nil,
	)
	return tab, m
}

func TestApplyMacroUpdatesSegments(t *testing.T) {
	tab, m := macroFixture(t)
	cmd := tab.Update(&m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("apply should report status")
	}
	seg := m.Session.Segments[0]
	if seg.Text != "Well here we go." {
		t.Fatalf("text = %q", seg.Text)
	}
	if !seg.Edited {
		t.Fatal("macro application should mark the segment edited")
	}
}

func TestApplyNoopMacroReportsNothing(t *testing.T) {
	tab, m := macroFixture(t)
	tab.Update(&m, keyMsg("j"))
	if tab.cursor != 1 {
		t.Fatalf("cursor = %d", tab.cursor)
	}
	before := m.Session.Segments[0].Text
	cmd := tab.Update(&m, keyMsg("enter"))
	if m.Session.Segments[0].Text != before {
		t.Fatal("noop macro changed text")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || !strings.Contains(msg.Text, "nothing to change") {
		t.Fatalf("status = %v", msg)
	}
}

func TestDryRunPreviewListsChanges(t *testing.T) {
	tab, m := macroFixture(t)
	out := macroBoard{tab: tab, session: m.Session}.Render(120, 24)
	if !strings.Contains(out, "1 segments would change") {
		t.Fatalf("preview missing change count:\n%s", out)
	}
}
