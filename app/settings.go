package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scribedeck/core"
	"scribedeck/internal/export"
	"scribedeck/widgets"
)

// SettingsTab shows the effective configuration plus live view state,
// and edits the persisted defaults in place: export format and field
// toggles, and the low-confidence marker threshold. Edits land in the
// model's config and are written back to config.toml on quit.
type SettingsTab struct{}

func NewSettingsTab() *SettingsTab { return &SettingsTab{} }

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	scope := t.Scope()
	switch {
	case keys.IsAction(key, "cycle-format", scope):
		m.Cfg.Export.Format = export.NextFormat(m.Cfg.Export.Format)
		return core.StatusCmd("Default export format → " + m.Cfg.Export.Format)
	case keys.IsAction(key, "toggle-timestamps", scope):
		m.Cfg.Export.IncludeTimestamps = !m.Cfg.Export.IncludeTimestamps
	case keys.IsAction(key, "toggle-speakers", scope):
		m.Cfg.Export.IncludeSpeakers = !m.Cfg.Export.IncludeSpeakers
	case keys.IsAction(key, "confidence-up", scope):
		m.Cfg.Transcript.MinConf = clampConf(m.Cfg.Transcript.MinConf + 0.05)
		return core.StatusCmd(fmt.Sprintf("Low-confidence marker below %.0f%%", m.Cfg.Transcript.MinConf*100))
	case keys.IsAction(key, "confidence-down", scope):
		m.Cfg.Transcript.MinConf = clampConf(m.Cfg.Transcript.MinConf - 0.05)
		return core.StatusCmd(fmt.Sprintf("Low-confidence marker below %.0f%%", m.Cfg.Transcript.MinConf*100))
	}
	return nil
}

func clampConf(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	return settingsBoard{model: m}
}

type settingsBoard struct {
	model *core.Model
}

func (b settingsBoard) Render(width, height int) string {
	m := b.model
	cfg := m.Cfg
	kv := func(k, v string) string {
		return labelStyle.Render(padName(k, 26)) + rowStyle.Render(v)
	}
	lines := []string{
		selectedStyle.Render("ui"),
		kv("  split_ratio (live)", fmt.Sprintf("%.2f", m.ViewState.SplitRatio)),
		kv("  split_ratio (saved)", fmt.Sprintf("%.2f", cfg.UI.SplitRatio)),
		kv("  min_pane_width", fmt.Sprintf("%d cells", cfg.UI.MinPaneWidth)),
		kv("  max_list_frac", fracLabel(cfg.UI.MaxListFrac)),
		kv("  max_detail_frac", fracLabel(cfg.UI.MaxDetailFrac)),
		"",
		selectedStyle.Render("export"),
		kv("  format", cfg.Export.Format+"  (f cycles)"),
		kv("  dir", cfg.Export.Dir),
		kv("  include_speakers", fmt.Sprintf("%v  (n)", cfg.Export.IncludeSpeakers)),
		kv("  include_timestamps", fmt.Sprintf("%v  (t)", cfg.Export.IncludeTimestamps)),
		"",
		selectedStyle.Render("transcript"),
		kv("  macros_path", cfg.Transcript.MacrosPath),
		kv("  min_confidence", fmt.Sprintf("%.2f  (+/-)", cfg.Transcript.MinConf)),
		kv("  seek_step_sec", fmt.Sprintf("%d", cfg.Transcript.SeekStepSec)),
		"",
		labelStyle.Render("Edits and the live split ratio are written to config.toml on quit."),
	}
	return widgets.Pane{Title: "Settings", Content: strings.Join(lines, "\n")}.Render(width, height)
}

func fracLabel(f float64) string {
	if f <= 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%.2f", f)
}
