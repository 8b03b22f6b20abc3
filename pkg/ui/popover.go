package ui

import (
	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Popover anchors a panel below a trigger, left-aligned. It never changes
// its own open state: clicks on the trigger and focus loss are reported
// through onOpenChange and the owner decides.
type Popover struct {
	open         bool
	trigger      selector.Rect
	onOpenChange func(bool)
	dismiss      key.Binding
}

// NewPopover creates a closed popover
func NewPopover(onOpenChange func(bool)) *Popover {
	return &Popover{
		onOpenChange: onOpenChange,
		dismiss:      key.NewBinding(key.WithKeys("tab", "shift+tab")),
	}
}

// SetOpen mirrors the owner's state
func (p *Popover) SetOpen(open bool) {
	p.open = open
}

// IsOpen returns true if the panel is showing
func (p *Popover) IsOpen() bool {
	return p.open
}

// Anchor records the trigger rectangle
func (p *Popover) Anchor(trigger selector.Rect) {
	p.trigger = trigger
}

// PanelOrigin returns where the panel's top-left cell is drawn
func (p *Popover) PanelOrigin() (x, y int) {
	return p.trigger.X, p.trigger.Y + p.trigger.Height
}

// Activate requests the opposite of the current state, as a trigger click
// does.
func (p *Popover) Activate() {
	if p.onOpenChange != nil {
		p.onOpenChange(!p.open)
	}
}

// HandleClick toggles on a trigger click that was not stopped by an inner
// element. It returns true if the click hit the trigger.
func (p *Popover) HandleClick(ev *selector.PointerEvent) bool {
	if ev.Stopped() || !p.trigger.Contains(ev.Point) {
		return false
	}
	p.Activate()
	return true
}

// HandleKey requests closing when focus leaves the panel
func (p *Popover) HandleKey(msg tea.KeyMsg) bool {
	if !p.open || !key.Matches(msg, p.dismiss) {
		return false
	}
	if p.onOpenChange != nil {
		p.onOpenChange(false)
	}
	return true
}

// Render stacks the panel under the trigger when open
func (p *Popover) Render(trigger, panel string) string {
	if !p.open {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, panel)
}
