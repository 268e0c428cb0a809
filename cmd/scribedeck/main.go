package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scribedeck/app"
	"scribedeck/core"
	"scribedeck/internal/config"
	"scribedeck/internal/macro"
	"scribedeck/internal/transcript"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	macros, err := macro.Load(cfg.Transcript.MacrosPath)
	if err != nil {
		log.Fatalf("macros: %v", err)
	}

	session := transcript.NewMockSession()
	if err := session.Validate(); err != nil {
		log.Fatalf("session: %v", err)
	}

	view := &core.ViewState{SplitRatio: cfg.UI.SplitRatio}
	shell, warn := app.NewShell(cfg, macros, view)

	model := core.NewModel(
		shell.Tabs(),
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		cfg,
		session,
		view,
	)
	app.ConfigureModel(&model, shell)
	if warn != nil {
		model.SetError(fmt.Errorf("split config: %w", warn))
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribedeck: %v\n", err)
		os.Exit(1)
	}

	// Persist Settings-tab edits and the divider position the user left
	// behind.
	if fm, ok := final.(core.Model); ok {
		cfg = fm.Cfg
	}
	cfg.UI.SplitRatio = view.SplitRatio
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "scribedeck: saving config: %v\n", err)
	}
}
