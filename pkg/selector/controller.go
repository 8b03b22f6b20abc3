// Package selector implements the interaction state of a labeled,
// single-value selector: popover visibility, outside-click dismissal,
// focus handoff into the searchable list, and the required-vs-clearable
// value contract. Rendering lives in pkg/ui.
package selector

import (
	"fmt"
	"io"
	"log/slog"
)

// List is the capability the searchable list exposes to the controller
type List interface {
	// FocusInput moves input focus to the filter field.
	FocusInput()
	// IsPointerWithin reports whether p lies inside the list.
	IsPointerWithin(p Point) bool
}

// Option configures a Controller
type Option func(*Controller)

// WithScheduler sets the scheduler used to defer listener registration
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithRegistry sets the registry that receives the outside-click listener.
// Defaults to DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(c *Controller) { c.registry = r }
}

// WithLogger sets the logger. Defaults to discarding
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns the open/closed state of one selector and mediates
// between the trigger, the overlay and the searchable list.
type Controller struct {
	cfg       Config
	list      List
	scheduler Scheduler
	registry  *Registry
	logger    *slog.Logger

	visible    bool
	generation uint64
	listener   ListenerID
	unmounted  bool
}

// NewController validates cfg and returns a closed controller
func NewController(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		registry: DefaultRegistry,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scheduler == nil {
		return nil, fmt.Errorf("%w: a scheduler is required", ErrInvalidConfig)
	}
	if c.registry == nil {
		c.registry = DefaultRegistry
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// Config returns the current configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration between renders. The variant kind
// must not change.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Required() != c.cfg.Required() {
		return fmt.Errorf("%w: variant of selector %q cannot change", ErrInvalidConfig, c.cfg.Label)
	}
	c.cfg = cfg
	return nil
}

// Mount attaches the searchable list capability
func (c *Controller) Mount(list List) error {
	if c.unmounted {
		return ErrUnmounted
	}
	c.list = list
	return nil
}

// Unmount detaches the outside-click listener and invalidates any pending
// deferred registration.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	c.visible = false
	c.generation++
	c.detach()
	c.list = nil
}

// Visible reports whether the popover is open
func (c *Controller) Visible() bool {
	return c.visible
}

// ListenerAttached reports whether the outside-click listener is registered
func (c *Controller) ListenerAttached() bool {
	return c.listener != 0
}

// Display derives the trigger display
func (c *Controller) Display() Display {
	return Derive(c.cfg, c.visible)
}

// Open opens the popover, as a trigger activation does
func (c *Controller) Open() {
	c.OpenChange(true)
}

// OpenChange applies an open/close request from the overlay
func (c *Controller) OpenChange(visible bool) {
	if c.unmounted {
		return
	}
	c.setVisible(visible)
}

// Select forwards value to the caller and closes the popover
func (c *Controller) Select(value string) {
	if c.unmounted {
		return
	}
	c.cfg.SetValue(value)
	c.setVisible(false)
}

// Cancel closes the popover after the list gives up
func (c *Controller) Cancel() {
	if c.unmounted {
		return
	}
	c.setVisible(false)
}

// RequestClear stops ev from reaching the trigger and calls ClearValue.
// It fails with ErrInvalidOperation on a Locked selector.
func (c *Controller) RequestClear(ev *PointerEvent) error {
	clearable, ok := c.cfg.Variant.(Clearable)
	if !ok {
		return fmt.Errorf("%w: cannot clear value of required selector %q", ErrInvalidOperation, c.cfg.Label)
	}
	if ev != nil {
		ev.StopPropagation()
	}
	clearable.ClearValue()
	return nil
}

// Rendered is called after the host has rendered the current state. While
// open it hands input focus to the list.
func (c *Controller) Rendered() {
	if c.visible && c.list != nil {
		c.list.FocusInput()
	}
}

func (c *Controller) setVisible(visible bool) {
	c.visible = visible
	c.generation++
	gen := c.generation
	c.logger.Debug("selector visibility changed",
		"label", c.cfg.Label, "visible", visible, "generation", gen)

	// The click that opened the popover is still being dispatched; the
	// listener must only see later clicks.
	c.scheduler.Schedule(func() {
		if gen != c.generation {
			c.logger.Debug("skipping stale listener update",
				"label", c.cfg.Label, "generation", gen, "current", c.generation)
			return
		}
		if visible {
			c.attach()
		} else {
			c.detach()
		}
	})
}

func (c *Controller) attach() {
	if c.listener != 0 {
		return
	}
	c.listener = c.registry.Add(c.onPointer)
	c.logger.Debug("outside-click listener attached", "label", c.cfg.Label, "id", c.listener)
}

func (c *Controller) detach() {
	if c.listener == 0 {
		return
	}
	c.registry.Remove(c.listener)
	c.logger.Debug("outside-click listener detached", "label", c.cfg.Label, "id", c.listener)
	c.listener = 0
}

func (c *Controller) onPointer(ev *PointerEvent) {
	if !c.visible || c.list == nil {
		return
	}
	if !c.list.IsPointerWithin(ev.Point) {
		c.setVisible(false)
	}
}
