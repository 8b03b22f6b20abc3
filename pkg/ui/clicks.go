package ui

import (
	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	tea "github.com/charmbracelet/bubbletea"
)

// ClickRouter delivers left clicks to selectors and then to the pointer
// registry, which is where outside-click listeners live.
type ClickRouter struct {
	registry *selector.Registry
	targets  []*NameSelectorModel
}

// NewClickRouter creates a router for targets. A nil registry means
// selector.DefaultRegistry.
func NewClickRouter(registry *selector.Registry, targets ...*NameSelectorModel) *ClickRouter {
	if registry == nil {
		registry = selector.DefaultRegistry
	}
	return &ClickRouter{registry: registry, targets: targets}
}

// Register adds a selector
func (r *ClickRouter) Register(t *NameSelectorModel) {
	r.targets = append(r.targets, t)
}

// PointerEventFromMouse converts a left button press into a pointer event
func PointerEventFromMouse(msg tea.MouseMsg) (*selector.PointerEvent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}
	return selector.NewPointerEvent(msg.X, msg.Y), true
}

// HandleMouse routes a click. Wheel events go to the selectors' Update
func (r *ClickRouter) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := PointerEventFromMouse(msg)
	if !ok {
		var cmds []tea.Cmd
		for _, t := range r.targets {
			cmds = append(cmds, t.Update(msg))
		}
		return tea.Batch(cmds...)
	}
	return r.Dispatch(ev)
}

// Dispatch delivers ev to every selector, then to the registry unless a
// selector stopped it, then lets each selector pick up state changes made by
// its listener.
func (r *ClickRouter) Dispatch(ev *selector.PointerEvent) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range r.targets {
		if ev.Stopped() {
			break
		}
		cmds = append(cmds, t.HandleClick(ev))
	}
	r.registry.Dispatch(ev)
	for _, t := range r.targets {
		cmds = append(cmds, t.Sync())
	}
	return tea.Batch(cmds...)
}
