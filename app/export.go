package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scribedeck/core"
	"scribedeck/internal/config"
	"scribedeck/internal/export"
	"scribedeck/internal/transcript"
	"scribedeck/widgets"
)

var (
	onStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

// ExportTab configures and runs a (fake) export job with a live
// preview of the selected format.
type ExportTab struct {
	opts export.Options
	dir  string

	running  bool
	progress float64
	spin     spinner.Model
	lastPath string
}

func NewExportTab(cfg config.Config) *ExportTab {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	return &ExportTab{
		opts: export.Options{
			Format:            cfg.Export.Format,
			IncludeSpeakers:   cfg.Export.IncludeSpeakers,
			IncludeTimestamps: cfg.Export.IncludeTimestamps,
		},
		dir:  cfg.Export.Dir,
		spin: sp,
	}
}

func (t *ExportTab) ID() string    { return "export" }
func (t *ExportTab) Title() string { return "Export" }
func (t *ExportTab) Scope() string { return "tab:export" }

func (t *ExportTab) outPath(m *core.Model) string {
	name := "transcript"
	if m.Session != nil && m.Session.Title != "" {
		name = m.Session.Title
	}
	return filepath.Join(t.dir, name+"."+t.opts.Format)
}

func (t *ExportTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case exportTickMsg:
		if !t.running {
			return nil
		}
		t.progress = msg.Progress + exportTickStep
		return exportTickCmd(t.progress, t.outPath(m))
	case exportDoneMsg:
		if !t.running {
			return nil
		}
		t.running = false
		t.progress = 1
		t.lastPath = msg.Path
		return core.StatusCmd("Export finished: " + msg.Path)
	case spinner.TickMsg:
		if !t.running {
			return nil
		}
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	return nil
}

func (t *ExportTab) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	keys := m.Keys()
	scope := t.Scope()
	switch {
	case keys.IsAction(msg, "start-export", scope):
		return t.Start(m)
	case keys.IsAction(msg, "cycle-format", scope):
		if t.running {
			return nil
		}
		t.opts.Format = export.NextFormat(t.opts.Format)
	case keys.IsAction(msg, "toggle-timestamps", scope):
		t.opts.IncludeTimestamps = !t.opts.IncludeTimestamps
	case keys.IsAction(msg, "toggle-speakers", scope):
		t.opts.IncludeSpeakers = !t.opts.IncludeSpeakers
	}
	return nil
}

// Start kicks the fake export job. Also reachable from the command
// palette.
func (t *ExportTab) Start(m *core.Model) tea.Cmd {
	if t.running {
		return core.StatusCmd("Export already running")
	}
	if m.Session == nil || len(m.Session.Segments) == 0 {
		return core.StatusCmd("Nothing to export")
	}
	t.running = true
	t.progress = 0
	t.lastPath = ""
	return tea.Batch(
		core.StatusCmd("Exporting "+t.outPath(m)+"…"),
		t.spin.Tick,
		exportTickCmd(0, t.outPath(m)),
	)
}

func (t *ExportTab) Running() bool { return t.running }

func (t *ExportTab) Build(m *core.Model) widgets.Widget {
	return exportBoard{tab: t, session: m.Session}
}

type exportBoard struct {
	tab     *ExportTab
	session *transcript.Session
}

func (b exportBoard) Render(width, height int) string {
	cfgPane := paneWidget{title: "Job", content: b.renderJob()}
	previewPane := paneWidget{title: "Preview · " + b.tab.opts.Format, content: b.renderPreview(max(20, width/2), height-2)}
	return widgets.HStack{
		Widgets: []widgets.Widget{cfgPane, previewPane},
		Ratios:  []float64{0.4, 0.6},
	}.Render(width, height)
}

func toggle(on bool, label string) string {
	if on {
		return onStyle.Render("[x] " + label)
	}
	return offStyle.Render("[ ] " + label)
}

func (b exportBoard) renderJob() string {
	t := b.tab
	lines := []string{
		labelStyle.Render("Format ") + selectedStyle.Render(t.opts.Format) + labelStyle.Render("  (f cycles)"),
		"",
		toggle(t.opts.IncludeSpeakers, "speakers (n)"),
		toggle(t.opts.IncludeTimestamps, "timestamps (t)"),
		"",
	}
	switch {
	case t.running:
		lines = append(lines, t.spin.View()+" "+progressBar(t.progress, 24))
	case t.lastPath != "":
		lines = append(lines, onStyle.Render("done ")+rowStyle.Render(t.lastPath))
	default:
		lines = append(lines, labelStyle.Render("enter starts the export"))
	}
	return strings.Join(lines, "\n")
}

func (b exportBoard) renderPreview(width, height int) string {
	if b.session == nil {
		return labelStyle.Render("No session")
	}
	doc, err := export.Render(b.session, b.tab.opts)
	if err != nil {
		return lowConfStyle.Render(err.Error())
	}
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if height > 0 && len(lines) > height {
		lines = append(lines[:height-1], labelStyle.Render("…"))
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "…")
	}
	return strings.Join(lines, "\n")
}

func progressBar(p float64, width int) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p * float64(width))
	bar := wavePastStyle.Render(strings.Repeat("█", filled)) + waveStyle.Render(strings.Repeat("░", width-filled))
	return bar + labelStyle.Render(fmt.Sprintf(" %3.0f%%", p*100))
}
