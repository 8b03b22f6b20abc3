package ui

import (
	"log/slog"
	"strings"

	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// deferredMsg arrives on the loop turn after work was scheduled on queue
type deferredMsg struct {
	queue *selector.Queue
}

// listMountedMsg arrives on the loop turn after the popover opened
type listMountedMsg struct {
	list *FilteredListModel
}

type triggerKeyMap struct {
	Open  key.Binding
	Clear key.Binding
}

func defaultTriggerKeyMap() triggerKeyMap {
	return triggerKeyMap{
		Open:  key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open")),
		Clear: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "clear")),
	}
}

// NameSelectorModel renders a labeled trigger that opens a filterable list of
// options in a popover.
type NameSelectorModel struct {
	ctrl    *selector.Controller
	list    *FilteredListModel
	popover *Popover
	queue   *selector.Queue
	keys    triggerKeyMap

	x, y        int
	width       int
	focused     bool
	clearBounds selector.Rect
	theme       Theme
	logger      *slog.Logger

	err error
}

// NewNameSelectorModel creates a closed selector. Deferred work is delivered
// through the bubbletea loop; opts may set the registry and logger.
func NewNameSelectorModel(cfg selector.Config, theme Theme, logger *slog.Logger, opts ...selector.Option) (*NameSelectorModel, error) {
	if logger == nil {
		logger = slog.Default()
	}
	queue := selector.NewQueue()
	opts = append([]selector.Option{selector.WithScheduler(queue), selector.WithLogger(logger)}, opts...)
	ctrl, err := selector.NewController(cfg, opts...)
	if err != nil {
		return nil, err
	}

	m := &NameSelectorModel{
		ctrl:    ctrl,
		queue:   queue,
		keys:    defaultTriggerKeyMap(),
		width:   DefaultTriggerWidth,
		theme:   theme,
		logger:  logger,
		popover: NewPopover(ctrl.OpenChange),
	}
	m.list = NewFilteredListModel(cfg.Options, cfg.CurrentValue(), ctrl.Select, ctrl.Cancel, theme)
	if err := ctrl.Mount(m.list); err != nil {
		return nil, err
	}
	m.layout()
	return m, nil
}

// Controller exposes the underlying state machine
func (m *NameSelectorModel) Controller() *selector.Controller {
	return m.ctrl
}

// List exposes the popover list
func (m *NameSelectorModel) List() *FilteredListModel {
	return m.list
}

// Visible reports whether the popover is open
func (m *NameSelectorModel) Visible() bool {
	return m.ctrl.Visible()
}

// Err returns the last contract violation raised while handling input
func (m *NameSelectorModel) Err() error {
	return m.err
}

// SetConfig applies a new configuration from the owner, typically after a
// SetValue or ClearValue callback changed the owner's value.
func (m *NameSelectorModel) SetConfig(cfg selector.Config) error {
	if err := m.ctrl.SetConfig(cfg); err != nil {
		return err
	}
	m.list.SetOptions(cfg.Options, cfg.CurrentValue())
	m.layout()
	return nil
}

// UpdateValue replaces only the value
func (m *NameSelectorModel) UpdateValue(value *string) error {
	cfg := m.ctrl.Config()
	cfg.Value = value
	return m.SetConfig(cfg)
}

// SetOrigin places the trigger's top-left cell on screen
func (m *NameSelectorModel) SetOrigin(x, y int) {
	m.x, m.y = x, y
	m.layout()
}

// SetWidth sets the trigger width; the popover list follows it
func (m *NameSelectorModel) SetWidth(width int) {
	m.width = max(width, MinTriggerWidth)
	m.layout()
}

// SetFocused marks the trigger as the keyboard target
func (m *NameSelectorModel) SetFocused(focused bool) {
	m.focused = focused
}

// Focused reports whether the trigger has keyboard focus
func (m *NameSelectorModel) Focused() bool {
	return m.focused
}

// Height returns the rendered height including an open popover
func (m *NameSelectorModel) Height() int {
	if m.ctrl.Visible() {
		return TriggerHeight + m.list.Height()
	}
	return TriggerHeight
}

// ClearBounds returns the clear affordance rectangle, if it is shown
func (m *NameSelectorModel) ClearBounds() (selector.Rect, bool) {
	if !m.ctrl.Display().ShowClear {
		return selector.Rect{}, false
	}
	return m.clearBounds, true
}

// ClearZoneID identifies the clear affordance for automation
func (m *NameSelectorModel) ClearZoneID() string {
	if !m.ctrl.Display().ShowClear {
		return ""
	}
	return selector.ClearZoneID
}

// Unmount detaches the outside-click listener
func (m *NameSelectorModel) Unmount() {
	m.ctrl.Unmount()
	m.popover.SetOpen(false)
}

// Update handles keys and the selector's own deferred messages
func (m *NameSelectorModel) Update(msg tea.Msg) tea.Cmd {
	wasOpen := m.ctrl.Visible()
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case deferredMsg:
		if msg.queue != m.queue {
			return nil
		}
		m.queue.Drain()

	case listMountedMsg:
		if msg.list != m.list {
			return nil
		}
		m.ctrl.Rendered()
		if m.list.Focused() {
			cmd = textinput.Blink
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if wasOpen && m.list.IsPointerWithin(selector.Point{X: msg.X, Y: msg.Y}) {
			cmd = m.list.Update(msg)
		}

	default:
		// cursor blink
		if wasOpen {
			cmd = m.list.Update(msg)
		}
	}

	return tea.Batch(cmd, m.Sync())
}

func (m *NameSelectorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.Visible() {
		if m.popover.HandleKey(msg) {
			return nil
		}
		return m.list.Update(msg)
	}
	if !m.focused {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		m.popover.Activate()
	case key.Matches(msg, m.keys.Clear):
		if m.ctrl.Display().ShowClear {
			m.requestClear(nil)
		}
	}
	return nil
}

// HandleClick routes a click through the selector the way it bubbles: the
// popover list first, then the clear affordance, then the trigger. The host
// dispatches ev to the pointer registry afterwards unless it was stopped.
func (m *NameSelectorModel) HandleClick(ev *selector.PointerEvent) tea.Cmd {
	wasOpen := m.ctrl.Visible()

	switch {
	case wasOpen && m.list.HandleClick(ev.Point):
	case m.ctrl.Display().ShowClear && m.clearBounds.Contains(ev.Point):
		m.requestClear(ev)
		// Stopped by the clear handler, so the trigger ignores it.
		m.popover.HandleClick(ev)
	default:
		m.popover.HandleClick(ev)
	}

	return m.Sync()
}

func (m *NameSelectorModel) requestClear(ev *selector.PointerEvent) {
	if err := m.ctrl.RequestClear(ev); err != nil {
		m.err = err
		m.logger.Error("clear rejected", "label", m.ctrl.Config().Label, "error", err)
	}
}

// Sync brings the popover and list in line with the controller and returns
// the commands that deliver deferred work on the next loop turn. Hosts call
// it after dispatching a click to the pointer registry.
func (m *NameSelectorModel) Sync() tea.Cmd {
	wasOpen := m.popover.IsOpen()
	open := m.ctrl.Visible()
	m.popover.SetOpen(open)
	if wasOpen && !open {
		m.list.Reset()
	}
	m.layout()

	var cmds []tea.Cmd
	if m.queue.Len() > 0 {
		q := m.queue
		cmds = append(cmds, func() tea.Msg { return deferredMsg{queue: q} })
	}
	if open && !wasOpen {
		l := m.list
		cmds = append(cmds, func() tea.Msg { return listMountedMsg{list: l} })
	}
	return tea.Batch(cmds...)
}

func (m *NameSelectorModel) layout() {
	m.popover.Anchor(selector.Rect{X: m.x, Y: m.y, Width: m.width, Height: TriggerHeight})
	m.list.SetSize(m.width, MaxListRows)
	px, py := m.popover.PanelOrigin()
	m.list.SetOrigin(px, py)
	// The clear glyph is the last content cell, inside the border and
	// right padding.
	m.clearBounds = selector.Rect{X: m.x + m.width - 3, Y: m.y + 1, Width: 1, Height: 1}
}

// View renders the trigger and, when open, the popover list below it
func (m *NameSelectorModel) View() string {
	return m.popover.Render(m.renderTrigger(), m.list.View())
}

func (m *NameSelectorModel) renderTrigger() string {
	t := m.theme
	d := m.ctrl.Display()
	contentWidth := m.width - 4

	right := glyphChevron
	if d.ShowClear {
		right += " " + glyphClear
	}
	room := contentWidth - runewidth.StringWidth(right) - 1

	label := ""
	if d.UseLabel {
		label = d.Label + ": "
	}
	text := d.Text
	if lw := runewidth.StringWidth(label); lw >= room {
		label = runewidth.Truncate(label, room, "…")
		text = ""
	} else {
		text = runewidth.Truncate(text, room-lw, "…")
	}
	gap := contentWidth - runewidth.StringWidth(label) - runewidth.StringWidth(text) - runewidth.StringWidth(right)

	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	textStyle := t.Renderer.NewStyle().Foreground(t.Base.GetForeground()).Bold(true)
	if !m.ctrl.Config().HasValue() {
		textStyle = t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
	}
	chevronStyle := t.Renderer.NewStyle().Foreground(t.Secondary)
	if d.Active {
		chevronStyle = chevronStyle.Foreground(t.Primary)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteString(textStyle.Render(text))
	b.WriteString(strings.Repeat(" ", max(gap, 1)))
	b.WriteString(chevronStyle.Render(glyphChevron))
	if d.ShowClear {
		b.WriteString(" ")
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Danger).Render(glyphClear))
	}

	style := triggerStyle(t, d.Active, d.Invalid).Width(m.width - 2)
	if m.focused && !d.Invalid {
		style = style.BorderForeground(t.Primary)
	}
	return style.Render(b.String())
}
