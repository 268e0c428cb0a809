package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scribedeck/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	var body string
	if len(m.tabs) > 0 && bodyHeight > 0 {
		body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("scribedeck")
	if m.Session != nil && m.Session.Title != "" {
		left += headerBarStyle.Render(" · " + m.Session.Title)
	}
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
