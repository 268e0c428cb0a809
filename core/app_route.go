package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// A resize invalidates any in-flight divider drag measurement.
		for _, t := range m.tabs {
			if d, ok := t.(TabDeselector); ok {
				d.OnDeselect()
			}
		}
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case tea.MouseMsg:
		return m.routeMouse(msg)
	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	// Background messages (ticks, job progress) go to every tab so work
	// keeps moving while another tab is active — or while a modal is
	// open: the stub engines reissue their tick on receipt, so a starved
	// message would end the chain for good.
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
		} else if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	for _, t := range m.tabs {
		if cmd := t.Update(&m, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}

	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) && !m.tabCapturesInput() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil
	}
	if !m.tabCapturesInput() {
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

// InputCapturer marks a tab that currently owns raw text input (an open
// editor field); global single-letter shortcuts stand down while it does.
type InputCapturer interface {
	CapturingInput() bool
}

func (m *Model) tabCapturesInput() bool {
	if len(m.tabs) == 0 {
		return false
	}
	if c, ok := m.tabs[m.activeTab].(InputCapturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (m Model) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screens.Top() != nil {
		return m, nil
	}
	if len(m.tabs) == 0 {
		return m, nil
	}
	handler, ok := m.tabs[m.activeTab].(MouseHandler)
	if !ok {
		return m, nil
	}
	local := msg
	local.Y -= m.chromeHeight()
	if local.Y < 0 {
		return m, nil
	}
	handled, cmd := handler.HandleMouse(&m, local)
	if !handled {
		return m, nil
	}
	return m, cmd
}

// chromeHeight is the rows above the tab body: header bar and status bar.
func (m Model) chromeHeight() int { return 2 }
