package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, same palette across the whole shell.
var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorWarning  lipgloss.Color = "#f9e2af"
	colorTabOff   lipgloss.Color = "#7f849c"
)
