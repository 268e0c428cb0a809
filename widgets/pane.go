package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a bordered box with the title embedded in the top border.
// Selected and Focused tint the border; Collapsed hides title and body.
type Pane struct {
	Title     string
	Content   string
	Selected  bool
	Focused   bool
	Collapsed bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := lipgloss.Color("#6c7086")
	if p.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if p.Focused {
		border = lipgloss.Color("#a6e3a1")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
		width = innerWidth + 2
	}

	title := strings.TrimSpace(titlePrefix + p.Title)
	if p.Collapsed {
		title = ""
	}
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	titleW := ansi.StringWidth(titleText)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	} else if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := height - 2
	var contentLines []string
	if !p.Collapsed && strings.TrimSpace(p.Content) != "" {
		contentLines = strings.Split(p.Content, "\n")
	}
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		line = contentStyle.Render(line)
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}
