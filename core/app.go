package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"scribedeck/internal/config"
	"scribedeck/internal/transcript"
	"scribedeck/widgets"
)

// Screen is a modal layer pushed over the active tab (command palette,
// pickers). The bool result of Update requests a pop.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one top-level view. Build returns the widget tree for the body.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// TabInitializer lets a tab schedule startup work.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// MouseHandler lets a tab consume mouse events, already translated to
// body-local coordinates.
type MouseHandler interface {
	HandleMouse(m *Model, msg tea.MouseMsg) (bool, tea.Cmd)
}

// TabDeselector is notified when another tab becomes active. Tabs use it
// to release transient interaction state (e.g. an in-flight divider drag).
type TabDeselector interface {
	OnDeselect()
}

// ViewState is presentation state owned by the shell and persisted by it,
// not by the widgets that report into it.
type ViewState struct {
	SplitRatio float64
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	Cfg       config.Config
	Session   *transcript.Session
	ViewState *ViewState

	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, cfg config.Config, session *transcript.Session, view *ViewState) Model {
	if view == nil {
		view = &ViewState{SplitRatio: 0.5}
	}
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		Cfg:       cfg,
		Session:   session,
		ViewState: view,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) || index == m.activeTab {
		return
	}
	if d, ok := m.tabs[m.activeTab].(TabDeselector); ok {
		d.OnDeselect()
	}
	m.activeTab = index
}

func (m *Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) Keys() *KeyRegistry {
	return m.keys
}

// ScreenStack holds the modal layers, topmost last.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

func (s *ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}
