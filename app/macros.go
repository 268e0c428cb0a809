package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"scribedeck/core"
	"scribedeck/internal/macro"
	"scribedeck/internal/transcript"
	"scribedeck/widgets"
)

// MacrosTab lists the text-cleanup macros with a live dry-run preview
// against the loaded session.
type MacrosTab struct {
	macros []macro.Macro
	cursor int
}

func NewMacrosTab(macros []macro.Macro) *MacrosTab {
	return &MacrosTab{macros: macros}
}

func (t *MacrosTab) ID() string    { return "macros" }
func (t *MacrosTab) Title() string { return "Macros" }
func (t *MacrosTab) Scope() string { return "tab:macros" }

func (t *MacrosTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	scope := t.Scope()
	switch {
	case keys.IsAction(key, "row-down", scope):
		if t.cursor < len(t.macros)-1 {
			t.cursor++
		}
	case keys.IsAction(key, "row-up", scope):
		if t.cursor > 0 {
			t.cursor--
		}
	case keys.IsAction(key, "apply-macro", scope):
		return t.applySelected(m)
	}
	return nil
}

// ApplySelected runs the highlighted macro over every segment.
func (t *MacrosTab) applySelected(m *core.Model) tea.Cmd {
	if t.cursor >= len(t.macros) || m.Session == nil {
		return nil
	}
	mac := t.macros[t.cursor]
	changed := 0
	for i := range m.Session.Segments {
		seg := &m.Session.Segments[i]
		after, n := mac.Apply(seg.Text)
		if n == 0 || after == seg.Text {
			continue
		}
		if err := m.Session.ApplyText(seg.ID, after); err != nil {
			return core.ErrorCmd(err)
		}
		changed++
	}
	if changed == 0 {
		return core.StatusCmd(fmt.Sprintf("%s: nothing to change", mac.Name))
	}
	return core.StatusCmd(fmt.Sprintf("%s: %d segments updated", mac.Name, changed))
}

func (t *MacrosTab) Build(m *core.Model) widgets.Widget {
	return macroBoard{tab: t, session: m.Session}
}

type macroBoard struct {
	tab     *MacrosTab
	session *transcript.Session
}

func (b macroBoard) Render(width, height int) string {
	if len(b.tab.macros) == 0 {
		return labelStyle.Render("No macros defined; edit macros.toml")
	}
	list := b.renderList()
	preview := b.renderPreview(max(20, width/2-6))
	return widgets.HStack{
		Widgets: []widgets.Widget{
			paneWidget{title: "Macros", content: list},
			paneWidget{title: "Dry run", content: preview},
		},
	}.Render(width, height)
}

func (b macroBoard) renderList() string {
	rows := make([]string, 0, len(b.tab.macros)*2)
	for i, mac := range b.tab.macros {
		cursor := "  "
		nameStyle := rowStyle
		if i == b.tab.cursor {
			cursor = selectedStyle.Render("▸ ")
			nameStyle = selectedStyle
		}
		rows = append(rows,
			cursor+nameStyle.Render(mac.Name)+labelStyle.Render(fmt.Sprintf("  %d rules", len(mac.Rules))),
			"    "+labelStyle.Render(mac.Description),
		)
	}
	return strings.Join(rows, "\n")
}

func (b macroBoard) renderPreview(width int) string {
	if b.session == nil || b.tab.cursor >= len(b.tab.macros) {
		return labelStyle.Render("No session")
	}
	mac := b.tab.macros[b.tab.cursor]
	texts := make([]string, len(b.session.Segments))
	for i, seg := range b.session.Segments {
		texts[i] = seg.Text
	}
	pairs := mac.DryRun(texts)
	if len(pairs) == 0 {
		return labelStyle.Render("No segments would change")
	}
	rows := []string{labelStyle.Render(fmt.Sprintf("%d segments would change", len(pairs))), ""}
	for i, p := range pairs {
		if i >= 4 {
			rows = append(rows, labelStyle.Render("…"))
			break
		}
		rows = append(rows,
			lowConfStyle.Render("- ")+rowStyle.Render(ansi.Truncate(p[0], width-2, "…")),
			wavePastStyle.Render("+ ")+rowStyle.Render(ansi.Truncate(p[1], width-2, "…")),
			"",
		)
	}
	return strings.Join(rows, "\n")
}

// paneWidget adapts a Pane to the Widget interface for stacking.
type paneWidget struct {
	title   string
	content string
}

func (p paneWidget) Render(width, height int) string {
	return widgets.Pane{Title: p.title, Content: p.content}.Render(width, height)
}
