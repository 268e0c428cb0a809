package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"scribedeck/core"
	"scribedeck/internal/config"
	"scribedeck/internal/macro"
	"scribedeck/screens"
	"scribedeck/widgets"
)

// Shell owns the tab instances so commands can reach into them.
type Shell struct {
	Timeline   *TimelineTab
	Transcript *TranscriptTab
	Macros     *MacrosTab
	Export     *ExportTab
	Settings   *SettingsTab
}

// NewShell builds the tabs. The returned warning is non-fatal: a split
// configuration that clamping will override (inverted min/max bounds).
func NewShell(cfg config.Config, macros []macro.Macro, view *core.ViewState) (*Shell, error) {
	s := &Shell{
		Timeline:   NewTimelineTab(cfg),
		Transcript: NewTranscriptTab(cfg, view),
		Macros:     NewMacrosTab(macros),
		Export:     NewExportTab(cfg),
		Settings:   NewSettingsTab(),
	}
	warn := widgets.SplitConfig{
		Ratio:         cfg.UI.SplitRatio,
		MinLeftWidth:  cfg.UI.MinPaneWidth,
		MinRightWidth: cfg.UI.MinPaneWidth,
		MaxLeftFrac:   cfg.UI.MaxListFrac,
		MaxRightFrac:  cfg.UI.MaxDetailFrac,
	}.Validate(0)
	return s, warn
}

func (s *Shell) Tabs() []core.Tab {
	return []core.Tab{s.Timeline, s.Transcript, s.Macros, s.Export, s.Settings}
}

// ConfigureModel hooks the command palette and registry into the model.
func ConfigureModel(m *core.Model, s *Shell) {
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(m, scope)
	}
	for _, c := range s.Commands() {
		m.CommandRegistry().Register(c)
	}
}

func (s *Shell) Commands() []core.Command {
	cmds := []core.Command{
		{
			ID: "view.split.reset", Name: "Reset split", Description: "Return the transcript split to 50/50",
			Execute: func(m *core.Model) tea.Cmd {
				s.Transcript.Split().Reset()
				return core.StatusCmd("Split reset to 50/50")
			},
		},
		{
			ID: "view.split.collapse-left", Name: "Collapse segment list", Description: "Give the detail pane the full width",
			Execute: func(m *core.Model) tea.Cmd {
				s.Transcript.Split().ToggleCollapse(widgets.SplitLeft)
				return nil
			},
		},
		{
			ID: "view.split.collapse-right", Name: "Collapse detail pane", Description: "Give the segment list the full width",
			Execute: func(m *core.Model) tea.Cmd {
				s.Transcript.Split().ToggleCollapse(widgets.SplitRight)
				return nil
			},
		},
		{
			ID: "export.start", Name: "Start export", Description: "Run the export job with the current settings",
			Disabled: func(m *core.Model) (bool, string) {
				if s.Export.Running() {
					return true, "export already running"
				}
				return false, ""
			},
			Execute: func(m *core.Model) tea.Cmd { return s.Export.Start(m) },
		},
		{
			ID: "transcript.regenerate", Name: "Regenerate voice", Description: "Resynthesize the selected edited segment",
			Scopes: []string{"tab:transcript"},
			Disabled: func(m *core.Model) (bool, string) {
				seg := s.Transcript.selected(m)
				if seg == nil || !seg.Edited {
					return true, "select an edited segment first"
				}
				return false, ""
			},
			Execute: func(m *core.Model) tea.Cmd { return s.Transcript.regenerateSelected(m) },
		},
		{
			ID: "macros.apply", Name: "Apply macro", Description: "Apply the highlighted macro to every segment",
			Scopes:  []string{"tab:macros"},
			Execute: func(m *core.Model) tea.Cmd { return s.Macros.applySelected(m) },
		},
	}
	for i, tab := range s.Tabs() {
		idx := i
		t := tab
		cmds = append(cmds, core.Command{
			ID:          "view.tab." + t.ID(),
			Name:        "Go to " + t.Title(),
			Description: "Switch to the " + t.Title() + " tab",
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(idx)
				return nil
			},
		})
	}
	return cmds
}
