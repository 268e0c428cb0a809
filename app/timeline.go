package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scribedeck/core"
	"scribedeck/internal/config"
	"scribedeck/internal/transcript"
	"scribedeck/widgets"
)

var (
	waveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	wavePastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	playheadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

// TimelineTab shows a mock waveform strip with a playhead and segment
// markers. Playback is a timer; there is no audio underneath.
type TimelineTab struct {
	playhead time.Duration
	playing  bool
	seekStep time.Duration
}

func NewTimelineTab(cfg config.Config) *TimelineTab {
	return &TimelineTab{seekStep: time.Duration(cfg.Transcript.SeekStepSec) * time.Second}
}

func (t *TimelineTab) ID() string    { return "timeline" }
func (t *TimelineTab) Title() string { return "Timeline" }
func (t *TimelineTab) Scope() string { return "tab:timeline" }

func (t *TimelineTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case playTickMsg:
		if !t.playing {
			return nil
		}
		t.playhead += playTickInterval
		if m.Session != nil && t.playhead >= m.Session.Duration {
			t.playhead = m.Session.Duration
			t.playing = false
			return core.StatusCmd("Reached end of media")
		}
		return playTickCmd()
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	return nil
}

func (t *TimelineTab) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	keys := m.Keys()
	scope := t.Scope()
	var end time.Duration
	if m.Session != nil {
		end = m.Session.Duration
	}
	clamp := func() {
		if t.playhead < 0 {
			t.playhead = 0
		}
		if t.playhead > end {
			t.playhead = end
		}
	}
	switch {
	case keys.IsAction(msg, "seek-back", scope):
		t.playhead -= t.seekStep
		clamp()
	case keys.IsAction(msg, "seek-fwd", scope):
		t.playhead += t.seekStep
		clamp()
	case keys.IsAction(msg, "seek-start", scope):
		t.playhead = 0
	case keys.IsAction(msg, "seek-end", scope):
		t.playhead = end
	case keys.IsAction(msg, "play-pause", scope):
		t.playing = !t.playing
		if t.playing {
			return tea.Batch(core.StatusCmd("Playing (mock)"), playTickCmd())
		}
		return core.StatusCmd("Paused")
	}
	return nil
}

func (t *TimelineTab) Build(m *core.Model) widgets.Widget {
	return timelineStrip{tab: t, session: m.Session}
}

type timelineStrip struct {
	tab     *TimelineTab
	session *transcript.Session
}

func (s timelineStrip) Render(width, height int) string {
	if s.session == nil || s.session.Duration <= 0 {
		return labelStyle.Render("No media loaded")
	}
	inner := max(10, width-4)
	head := headerLine(s.tab, s.session)
	wave := waveformLine(s.session, s.tab.playhead, inner)
	markers := markerLine(s.session, inner)
	ruler := rulerLine(s.session.Duration, inner)
	cueLine := currentCueLine(s.session, s.tab.playhead)

	content := strings.Join([]string{head, "", wave, markers, ruler, "", cueLine}, "\n")
	return widgets.Pane{Title: "Timeline", Content: content}.Render(width, height)
}

func headerLine(t *TimelineTab, sess *transcript.Session) string {
	state := "⏸"
	if t.playing {
		state = "▶"
	}
	return fmt.Sprintf("%s  %s / %s", state,
		transcript.FormatTimestamp(t.playhead),
		transcript.FormatTimestamp(sess.Duration))
}

// waveformLine draws a pseudo waveform derived from the media
// fingerprint, so it is stable per session without any audio data.
func waveformLine(sess *transcript.Session, playhead time.Duration, width int) string {
	blocks := []rune("▁▂▃▄▅▆▇")
	fp := sess.MediaFingerprint
	if fp == "" {
		fp = sess.MediaPath
	}
	headCol := playheadColumn(playhead, sess.Duration, width)
	var b strings.Builder
	for i := 0; i < width; i++ {
		h := int(fp[i%len(fp)]+byte(i*7)) % len(blocks)
		// Flatten the wave inside gaps between segments.
		at := time.Duration(float64(sess.Duration) * float64(i) / float64(width))
		if sess.SegmentAt(at) < 0 {
			h = 0
		}
		ch := string(blocks[h])
		switch {
		case i == headCol:
			b.WriteString(playheadStyle.Render("█"))
		case i < headCol:
			b.WriteString(wavePastStyle.Render(ch))
		default:
			b.WriteString(waveStyle.Render(ch))
		}
	}
	return b.String()
}

func markerLine(sess *transcript.Session, width int) string {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	for _, seg := range sess.Segments {
		col := playheadColumn(seg.Start, sess.Duration, width)
		if col >= 0 && col < width {
			row[col] = '┊'
		}
	}
	return markerStyle.Render(string(row))
}

func rulerLine(total time.Duration, width int) string {
	left := transcript.FormatTimestamp(0)
	mid := transcript.FormatTimestamp(total / 2)
	right := transcript.FormatTimestamp(total)
	pad := width - len(left) - len(mid) - len(right)
	if pad < 2 {
		return labelStyle.Render(left + " " + right)
	}
	return labelStyle.Render(left + strings.Repeat(" ", pad/2) + mid + strings.Repeat(" ", pad-pad/2) + right)
}

func currentCueLine(sess *transcript.Session, playhead time.Duration) string {
	i := sess.SegmentAt(playhead)
	if i < 0 {
		return labelStyle.Render("—")
	}
	seg := sess.Segments[i]
	return speakerStyle.Render(seg.Speaker+": ") + rowStyle.Render(seg.Text)
}

func playheadColumn(at, total time.Duration, width int) int {
	if total <= 0 {
		return 0
	}
	col := int(float64(width) * float64(at) / float64(total))
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}
