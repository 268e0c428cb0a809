package widgets

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SplitSide names one half of a SplitView.
type SplitSide int

const (
	SplitLeft SplitSide = iota
	SplitRight
)

// Collapse pins the ratio to a small non-zero sliver so the divider stays
// reachable; neither pane ever reaches width zero.
const (
	collapsedLeftRatio  = 0.02
	collapsedRightRatio = 0.98
	defaultSplitRatio   = 0.5
	dividerHitSlop      = 1
)

// SplitConfig configures a SplitView. Zero values mean: ratio 0.5, no
// minimum widths, no maximum fractions.
type SplitConfig struct {
	Ratio         float64
	MinLeftWidth  int // cells
	MinRightWidth int // cells
	MaxLeftFrac   float64 // 0 = unbounded
	MaxRightFrac  float64 // 0 = unbounded
	LeftTitle     string
	RightTitle    string

	// OnChange is called with the new ratio on every change, including
	// every drag motion. Persisting the ratio is the caller's job.
	OnChange func(ratio float64)
}

// Validate reports misconfigurations that clamping would otherwise resolve
// silently (min wider than max, impossible max bands, out-of-range ratio).
// The view still operates on an invalid config; the last clamp wins.
func (c SplitConfig) Validate(containerWidth int) error {
	if c.Ratio < 0 || c.Ratio > 1 {
		return fmt.Errorf("split ratio %v outside [0,1]", c.Ratio)
	}
	if c.MinLeftWidth < 0 || c.MinRightWidth < 0 {
		return fmt.Errorf("negative minimum pane width")
	}
	if c.MaxLeftFrac < 0 || c.MaxLeftFrac > 1 || c.MaxRightFrac < 0 || c.MaxRightFrac > 1 {
		return fmt.Errorf("maximum pane fraction outside [0,1]")
	}
	if c.MaxLeftFrac > 0 && c.MaxRightFrac > 0 && c.MaxLeftFrac < 1-c.MaxRightFrac {
		return fmt.Errorf("maximum fractions %v/%v leave no valid ratio band", c.MaxLeftFrac, c.MaxRightFrac)
	}
	if containerWidth > 0 {
		if c.MaxLeftFrac > 0 && float64(c.MinLeftWidth)/float64(containerWidth) > c.MaxLeftFrac {
			return fmt.Errorf("left minimum width %d exceeds maximum fraction %v at width %d", c.MinLeftWidth, c.MaxLeftFrac, containerWidth)
		}
		if c.MaxRightFrac > 0 && float64(c.MinRightWidth)/float64(containerWidth) > c.MaxRightFrac {
			return fmt.Errorf("right minimum width %d exceeds maximum fraction %v at width %d", c.MinRightWidth, c.MaxRightFrac, containerWidth)
		}
	}
	return nil
}

// dragSession is the transient state between press and release on the
// divider. The container width is captured once at drag start; a resize
// mid-drag would otherwise silently change the denominator.
type dragSession struct {
	startX     int
	startRatio float64
	width      int
}

// SplitView is a two-pane layout with a draggable one-cell divider.
// It owns the ratio and the drag session; hosts receive ratio changes
// through SplitConfig.OnChange and are responsible for persistence.
type SplitView struct {
	cfg   SplitConfig
	ratio float64

	collapsedLeft  bool
	collapsedRight bool

	// lastWidth is the container width from the most recent Render call;
	// it is the only measurement the component takes.
	lastWidth int

	drag *dragSession
}

// NewSplitView builds a split view from cfg. A zero ratio defaults to 0.5.
func NewSplitView(cfg SplitConfig) *SplitView {
	r := cfg.Ratio
	if r <= 0 || r > 1 {
		r = defaultSplitRatio
	}
	return &SplitView{cfg: cfg, ratio: r}
}

func (s *SplitView) Ratio() float64 { return s.ratio }

func (s *SplitView) Dragging() bool { return s.drag != nil }

func (s *SplitView) Collapsed(side SplitSide) bool {
	if side == SplitLeft {
		return s.collapsedLeft
	}
	return s.collapsedRight
}

// BeginDrag opens a drag session at pointer column x. The container width
// is read once here; if the view has never rendered (width 0) the session
// is inert and motion is ignored.
func (s *SplitView) BeginDrag(x int) {
	s.drag = &dragSession{startX: x, startRatio: s.ratio, width: s.lastWidth}
}

// UpdateDrag recomputes the ratio from pointer column x. Live-resize: the
// ratio and OnChange fire on every motion, not on release.
func (s *SplitView) UpdateDrag(x int) {
	d := s.drag
	if d == nil || d.width <= 0 {
		return
	}
	delta := float64(x-d.startX) / float64(d.width)
	s.setRatio(s.clampRatio(d.width, d.startRatio+delta))
}

// EndDrag closes the session. Idempotent; no snapping. Called from every
// exit path (release, resize, deselect) so drag mode can never leak.
func (s *SplitView) EndDrag() { s.drag = nil }

// Reset returns the split to 50/50 and expands both sides.
func (s *SplitView) Reset() {
	s.collapsedLeft = false
	s.collapsedRight = false
	s.setRatio(defaultSplitRatio)
}

// ToggleCollapse shrinks side to a sliver, or restores a collapsed side
// to 50/50. The pre-collapse ratio is not remembered.
func (s *SplitView) ToggleCollapse(side SplitSide) {
	switch side {
	case SplitLeft:
		if s.collapsedLeft {
			s.collapsedLeft = false
			s.setRatio(defaultSplitRatio)
			return
		}
		s.collapsedLeft = true
		s.setRatio(collapsedLeftRatio)
	case SplitRight:
		if s.collapsedRight {
			s.collapsedRight = false
			s.setRatio(defaultSplitRatio)
			return
		}
		s.collapsedRight = true
		s.setRatio(collapsedRightRatio)
	}
}

// Nudge moves the ratio by delta under the same clamping as a drag,
// using the last measured width. No-op before the first render.
func (s *SplitView) Nudge(delta float64) {
	if s.lastWidth <= 0 {
		return
	}
	s.setRatio(s.clampRatio(s.lastWidth, s.ratio+delta))
}

func (s *SplitView) setRatio(r float64) {
	s.ratio = r
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(r)
	}
}

// clampRatio applies the minimum-width band, then the maximum-fraction
// band. The order is load-bearing: with an inverted configuration the
// later (maximum) clamp wins.
func (s *SplitView) clampRatio(width int, r float64) float64 {
	if width <= 0 {
		return math.Min(1, math.Max(0, r))
	}
	minLeft := float64(s.cfg.MinLeftWidth) / float64(width)
	minRight := float64(s.cfg.MinRightWidth) / float64(width)
	r = math.Max(r, minLeft)
	r = math.Min(r, 1-minRight)
	if s.cfg.MaxRightFrac > 0 {
		r = math.Max(r, 1-s.cfg.MaxRightFrac)
	}
	if s.cfg.MaxLeftFrac > 0 {
		r = math.Min(r, s.cfg.MaxLeftFrac)
	}
	return math.Min(1, math.Max(0, r))
}

// DividerX returns the divider's column for the last rendered width,
// or -1 before the first render.
func (s *SplitView) DividerX() int {
	if s.lastWidth <= 0 {
		return -1
	}
	return s.leftWidth(s.lastWidth)
}

func (s *SplitView) leftWidth(width int) int {
	usable := width - 1
	lw := int(math.Round(s.ratio * float64(usable)))
	if lw < 1 {
		lw = 1
	}
	if lw > usable-1 {
		lw = usable - 1
	}
	return lw
}

// HandleMouse consumes a mouse event in split-local coordinates and
// reports whether it was handled. Press on the divider (±1 cell slop)
// begins a drag, motion live-resizes, release ends the session, middle
// click on the divider resets to 50/50.
func (s *SplitView) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if s.drag != nil {
			return true
		}
		if !s.onDivider(msg.X) {
			return false
		}
		if msg.Button == tea.MouseButtonMiddle {
			s.Reset()
			return true
		}
		if msg.Button == tea.MouseButtonLeft {
			s.BeginDrag(msg.X)
			return true
		}
		return false
	case tea.MouseActionMotion:
		if s.drag == nil {
			return false
		}
		s.UpdateDrag(msg.X)
		return true
	case tea.MouseActionRelease:
		if s.drag == nil {
			return false
		}
		s.UpdateDrag(msg.X)
		s.EndDrag()
		return true
	}
	return false
}

func (s *SplitView) onDivider(x int) bool {
	dx := s.DividerX()
	if dx < 0 {
		return false
	}
	return x >= dx-dividerHitSlop && x <= dx+dividerHitSlop
}

// Layout wraps the view and two content widgets into a renderable Widget.
// Rendering measures the container; that measurement feeds hit testing
// and the next drag session.
func (s *SplitView) Layout(left, right Widget) Widget {
	return splitLayout{view: s, left: left, right: right}
}

type splitLayout struct {
	view  *SplitView
	left  Widget
	right Widget
}

func (l splitLayout) Render(width, height int) string {
	s := l.view
	if width < 5 || height <= 0 {
		return ""
	}
	if s.drag != nil && s.lastWidth != 0 && s.lastWidth != width {
		// Container changed size mid-drag; the captured width is stale.
		s.EndDrag()
	}
	s.lastWidth = width

	lw := s.leftWidth(width)
	rw := width - 1 - lw

	leftContent := ""
	if !s.collapsedLeft && l.left != nil {
		leftContent = l.left.Render(max(1, lw-4), height-2)
	}
	rightContent := ""
	if !s.collapsedRight && l.right != nil {
		rightContent = l.right.Render(max(1, rw-4), height-2)
	}

	leftPane := Pane{
		Title:     s.cfg.LeftTitle,
		Content:   leftContent,
		Collapsed: s.collapsedLeft,
	}.Render(lw, height)
	rightPane := Pane{
		Title:     s.cfg.RightTitle,
		Content:   rightContent,
		Collapsed: s.collapsedRight,
	}.Render(rw, height)

	divider := s.renderDivider(height)

	leftLines := splitToLines(leftPane, height)
	rightLines := splitToLines(rightPane, height)
	divLines := splitToLines(divider, height)
	rows := make([]string, height)
	for i := 0; i < height; i++ {
		rows[i] = padRight(leftLines[i], lw) + divLines[i] + padRight(rightLines[i], rw)
	}
	return strings.Join(rows, "\n")
}

func (s *SplitView) renderDivider(height int) string {
	color := lipgloss.Color("#585b70")
	if s.drag != nil {
		color = lipgloss.Color("#89b4fa")
	}
	style := lipgloss.NewStyle().Foreground(color)
	rows := make([]string, height)
	grip := height / 2
	for i := range rows {
		switch {
		case i >= grip-1 && i <= grip+1:
			rows[i] = style.Render("┃")
		default:
			rows[i] = style.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}
