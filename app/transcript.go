package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scribedeck/core"
	"scribedeck/internal/config"
	"scribedeck/internal/transcript"
	"scribedeck/widgets"
)

var (
	cueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	speakerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	dirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	lowConfStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// TranscriptTab is the segment editor: a split view with the segment
// list on the left and the selected segment's detail/editor on the
// right.
type TranscriptTab struct {
	split   *widgets.SplitView
	cursor  int
	top     int
	minConf float64

	editing bool
	input   textinput.Model

	regenerating map[string]bool
	transcribing bool
}

func NewTranscriptTab(cfg config.Config, view *core.ViewState) *TranscriptTab {
	ti := textinput.New()
	ti.Prompt = "✎ "
	ti.CharLimit = 400
	t := &TranscriptTab{
		input:        ti,
		minConf:      cfg.Transcript.MinConf,
		regenerating: map[string]bool{},
	}
	t.split = widgets.NewSplitView(widgets.SplitConfig{
		Ratio:         cfg.UI.SplitRatio,
		MinLeftWidth:  cfg.UI.MinPaneWidth,
		MinRightWidth: cfg.UI.MinPaneWidth,
		MaxLeftFrac:   cfg.UI.MaxListFrac,
		MaxRightFrac:  cfg.UI.MaxDetailFrac,
		LeftTitle:     "Segments",
		RightTitle:    "Detail",
		OnChange:      func(r float64) { view.SplitRatio = r },
	})
	return t
}

func (t *TranscriptTab) ID() string    { return "transcript" }
func (t *TranscriptTab) Title() string { return "Transcript" }
func (t *TranscriptTab) Scope() string { return "tab:transcript" }

// Split exposes the split view for command wiring.
func (t *TranscriptTab) Split() *widgets.SplitView { return t.split }

func (t *TranscriptTab) CapturingInput() bool { return t.editing }

// OnDeselect releases any in-flight divider drag when the tab loses
// focus or the window resizes.
func (t *TranscriptTab) OnDeselect() { t.split.EndDrag() }

func (t *TranscriptTab) InitTab(m *core.Model) tea.Cmd {
	t.transcribing = true
	return tea.Batch(core.StatusCmd("Transcribing…"), transcribeCmd(1))
}

func (t *TranscriptTab) selected(m *core.Model) *transcript.Segment {
	if m.Session == nil || t.cursor < 0 || t.cursor >= len(m.Session.Segments) {
		return nil
	}
	return &m.Session.Segments[t.cursor]
}

func (t *TranscriptTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transcribeProgressMsg:
		if !t.transcribing {
			return nil
		}
		return tea.Batch(
			core.StatusCmd(fmt.Sprintf("Transcribing chunk %d/%d…", msg.Chunk, msg.Chunks)),
			transcribeCmd(msg.Chunk+1),
		)
	case transcribeDoneMsg:
		if !t.transcribing {
			return nil
		}
		t.transcribing = false
		n := 0
		if m.Session != nil {
			n = len(m.Session.Segments)
		}
		return core.StatusCmd(fmt.Sprintf("Transcription ready: %d segments", n))
	case regenerateDoneMsg:
		if !t.regenerating[msg.SegmentID] {
			return nil
		}
		delete(t.regenerating, msg.SegmentID)
		if m.Session != nil {
			if i := m.Session.SegmentByID(msg.SegmentID); i >= 0 {
				m.Session.Segments[i].Edited = false
			}
		}
		return core.StatusCmd(fmt.Sprintf("Voice regenerated (padded %dms to fit slot)", msg.PaddedMs))
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	if t.editing {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}
	return nil
}

func (t *TranscriptTab) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	if t.editing {
		switch msg.String() {
		case "enter":
			return t.commitEdit(m)
		case "esc":
			t.editing = false
			return core.StatusCmd("Edit cancelled")
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}

	keys := m.Keys()
	scope := t.Scope()
	total := 0
	if m.Session != nil {
		total = len(m.Session.Segments)
	}
	switch {
	case keys.IsAction(msg, "row-down", scope):
		if t.cursor < total-1 {
			t.cursor++
		}
	case keys.IsAction(msg, "row-up", scope):
		if t.cursor > 0 {
			t.cursor--
		}
	case keys.IsAction(msg, "edit", scope):
		return t.beginEdit(m)
	case keys.IsAction(msg, "cycle-speaker", scope):
		seg := t.selected(m)
		if seg == nil {
			return nil
		}
		if err := m.Session.CycleSpeaker(seg.ID); err != nil {
			return core.ErrorCmd(err)
		}
		return core.StatusCmd("Speaker → " + seg.Speaker)
	case keys.IsAction(msg, "regenerate", scope):
		return t.regenerateSelected(m)
	case keys.IsAction(msg, "split-reset", scope):
		t.split.Reset()
		return core.StatusCmd("Split reset to 50/50")
	case keys.IsAction(msg, "collapse-left", scope):
		t.split.ToggleCollapse(widgets.SplitLeft)
	case keys.IsAction(msg, "collapse-right", scope):
		t.split.ToggleCollapse(widgets.SplitRight)
	case keys.IsAction(msg, "split-narrow", scope):
		t.split.Nudge(-0.05)
	case keys.IsAction(msg, "split-widen", scope):
		t.split.Nudge(0.05)
	}
	return nil
}

func (t *TranscriptTab) beginEdit(m *core.Model) tea.Cmd {
	seg := t.selected(m)
	if seg == nil {
		return nil
	}
	t.editing = true
	t.input.SetValue(seg.Text)
	t.input.CursorEnd()
	t.input.Focus()
	return core.StatusCmd("Editing segment; enter commits, esc cancels")
}

func (t *TranscriptTab) commitEdit(m *core.Model) tea.Cmd {
	seg := t.selected(m)
	t.editing = false
	if seg == nil {
		return nil
	}
	if err := m.Session.ApplyText(seg.ID, t.input.Value()); err != nil {
		return core.ErrorCmd(err)
	}
	return core.StatusCmd("Segment updated; r regenerates the voice take")
}

func (t *TranscriptTab) regenerateSelected(m *core.Model) tea.Cmd {
	seg := t.selected(m)
	if seg == nil {
		return nil
	}
	if !seg.Edited {
		return core.StatusCmd("Segment unchanged; nothing to regenerate")
	}
	if t.regenerating[seg.ID] {
		return nil
	}
	t.regenerating[seg.ID] = true
	return tea.Batch(
		core.StatusCmd("Regenerating voice for "+seg.Speaker+"…"),
		regenerateCmd(seg.ID, seg.Duration()),
	)
}

func (t *TranscriptTab) HandleMouse(m *core.Model, msg tea.MouseMsg) (bool, tea.Cmd) {
	if t.split.HandleMouse(msg) {
		return true, nil
	}
	// Left-click on a list row selects the segment. Row 0 of the pane
	// is its border.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		dx := t.split.DividerX()
		if dx > 0 && msg.X < dx && !t.split.Collapsed(widgets.SplitLeft) {
			row := t.top + msg.Y - 1
			if m.Session != nil && row >= 0 && row < len(m.Session.Segments) {
				t.cursor = row
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *TranscriptTab) Build(m *core.Model) widgets.Widget {
	return t.split.Layout(
		segmentList{tab: t, session: m.Session},
		segmentDetail{tab: t, session: m.Session},
	)
}

type segmentList struct {
	tab     *TranscriptTab
	session *transcript.Session
}

func (l segmentList) Render(width, height int) string {
	if l.session == nil || len(l.session.Segments) == 0 {
		return labelStyle.Render("No segments")
	}
	t := l.tab
	if t.cursor < t.top {
		t.top = t.cursor
	}
	if t.cursor >= t.top+height {
		t.top = t.cursor - height + 1
	}
	rows := make([]string, 0, height)
	for i := t.top; i < len(l.session.Segments) && len(rows) < height; i++ {
		seg := l.session.Segments[i]
		marker := " "
		switch {
		case t.regenerating[seg.ID]:
			marker = dirtyStyle.Render("~")
		case seg.Edited:
			marker = dirtyStyle.Render("*")
		case seg.Confidence < t.minConf:
			marker = lowConfStyle.Render("?")
		}
		cursor := "  "
		textStyle := rowStyle
		if i == t.cursor {
			cursor = selectedStyle.Render("▸ ")
			textStyle = selectedStyle
		}
		line := cursor + marker +
			cueStyle.Render(transcript.FormatTimestamp(seg.Start)) + " " +
			speakerStyle.Render(padName(seg.Speaker, 4)) + " " +
			textStyle.Render(seg.Text)
		rows = append(rows, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(rows, "\n")
}

type segmentDetail struct {
	tab     *TranscriptTab
	session *transcript.Session
}

func (d segmentDetail) Render(width, height int) string {
	if d.session == nil || d.tab.cursor >= len(d.session.Segments) {
		return labelStyle.Render("Nothing selected")
	}
	seg := d.session.Segments[d.tab.cursor]
	lines := []string{
		labelStyle.Render("Cue        ") + rowStyle.Render(transcript.FormatCue(seg)),
		labelStyle.Render("Speaker    ") + speakerStyle.Render(seg.Speaker),
		labelStyle.Render("Duration   ") + rowStyle.Render(fmt.Sprintf("%.1fs", seg.Duration().Seconds())),
		labelStyle.Render("Confidence ") + confidenceLine(seg.Confidence, d.tab.minConf),
		"",
	}
	if d.tab.editing {
		lines = append(lines, d.tab.input.View())
	} else {
		lines = append(lines, wrapText(seg.Text, max(10, width))...)
		if seg.Edited {
			lines = append(lines, "", dirtyStyle.Render("edited · r regenerates voice"))
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func confidenceLine(conf, minConf float64) string {
	s := fmt.Sprintf("%.0f%%", conf*100)
	if conf < minConf {
		return lowConfStyle.Render(s + " (low)")
	}
	return rowStyle.Render(s)
}

func padName(name string, width int) string {
	if len(name) >= width {
		return name
	}
	return name + strings.Repeat(" ", width-len(name))
}

// wrapText is a plain word wrapper for unstyled text.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}
