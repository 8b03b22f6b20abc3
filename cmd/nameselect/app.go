package main

import (
	"log/slog"
	"strings"

	"github.com/Dicklesworthstone/nameselector/pkg/config"
	"github.com/Dicklesworthstone/nameselector/pkg/selector"
	"github.com/Dicklesworthstone/nameselector/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Rows taken by the title above the first selector
const headerRows = 2

// field owns the value of one selector
type field struct {
	name  string
	value *string
	sel   *ui.NameSelectorModel
}

type result struct {
	Name  string
	Value *string
}

// appModel stacks the configured selectors vertically
type appModel struct {
	fields   []*field
	router   *ui.ClickRouter
	registry *selector.Registry
	focus    int
	width    int
	theme    ui.Theme
	logger   *slog.Logger

	status  string
	done    bool
	aborted bool
}

func newAppModel(cfg *config.File, theme ui.Theme, logger *slog.Logger, registry *selector.Registry) (*appModel, error) {
	m := &appModel{
		registry: registry,
		router:   ui.NewClickRouter(registry),
		theme:    theme,
		logger:   logger,
		width:    ui.DefaultTriggerWidth,
	}
	for _, fc := range cfg.Selectors {
		f, err := m.newField(fc)
		if err != nil {
			return nil, err
		}
		m.fields = append(m.fields, f)
		m.router.Register(f.sel)
	}
	m.setFocus(0)
	m.relayout()
	return m, nil
}

func (m *appModel) newField(fc config.Field) (*field, error) {
	f := &field{name: fc.Name, value: fc.InitialValue()}
	update := func(v *string) {
		f.value = v
		if err := f.sel.UpdateValue(v); err != nil {
			m.logger.Error("update value", "field", f.name, "error", err)
		}
	}

	cfg := selector.Config{
		Label:       fc.Label,
		Placeholder: fc.Placeholder.Placeholder(),
		Options:     fc.Options,
		Value:       f.value,
		SetValue: func(v string) {
			m.logger.Debug("value selected", "field", f.name, "value", v)
			update(&v)
		},
		Variant: selector.Clearable{ClearValue: func() {
			m.logger.Debug("value cleared", "field", f.name)
			update(nil)
		}},
	}
	if fc.Required {
		cfg.Variant = selector.Locked{}
	}

	sel, err := ui.NewNameSelectorModel(cfg, m.theme, m.logger, selector.WithRegistry(m.registry))
	if err != nil {
		return nil, err
	}
	f.sel = sel
	return f, nil
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-2, ui.MinTriggerWidth), 72)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		if ev, ok := ui.PointerEventFromMouse(msg); ok {
			m.focusAt(ev.Point)
			cmds = append(cmds, m.router.Dispatch(ev))
		} else {
			cmds = append(cmds, m.router.HandleMouse(msg))
		}

	default:
		// Deferred work and list mounting are addressed to one selector;
		// the others ignore them.
		for _, f := range m.fields {
			cmds = append(cmds, f.sel.Update(msg))
		}
	}

	m.relayout()
	if m.done || m.aborted {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.aborted = true
		return nil
	}
	if open := m.openField(); open != nil {
		return open.sel.Update(msg)
	}

	m.status = ""
	switch msg.String() {
	case "tab":
		m.setFocus(m.focus + 1)
		return nil
	case "shift+tab":
		m.setFocus(m.focus - 1)
		return nil
	case "q":
		m.finish()
		return nil
	}
	return m.fields[m.focus].sel.Update(msg)
}

func (m *appModel) finish() {
	for _, f := range m.fields {
		if f.sel.Controller().Config().Required() && f.value == nil {
			m.status = f.sel.Controller().Config().Label + " is required"
			return
		}
	}
	m.done = true
}

func (m *appModel) openField() *field {
	for _, f := range m.fields {
		if f.sel.Visible() {
			return f
		}
	}
	return nil
}

func (m *appModel) setFocus(i int) {
	n := len(m.fields)
	if n == 0 {
		return
	}
	m.focus = ((i % n) + n) % n
	for j, f := range m.fields {
		f.sel.SetFocused(j == m.focus)
	}
}

func (m *appModel) focusAt(p selector.Point) {
	y := headerRows
	for i, f := range m.fields {
		if p.Y >= y && p.Y < y+ui.TriggerHeight {
			m.setFocus(i)
			return
		}
		y += f.sel.Height() + 1
	}
}

func (m *appModel) relayout() {
	y := headerRows
	for _, f := range m.fields {
		f.sel.SetWidth(m.width)
		f.sel.SetOrigin(0, y)
		y += f.sel.Height() + 1
	}
}

func (m *appModel) unmount() {
	for _, f := range m.fields {
		f.sel.Unmount()
	}
}

func (m *appModel) results() []result {
	out := make([]result, 0, len(m.fields))
	for _, f := range m.fields {
		out = append(out, result{Name: f.name, Value: f.value})
	}
	return out
}

func (m *appModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("Select values"))
	b.WriteString("\n\n")
	for _, f := range m.fields {
		b.WriteString(f.sel.View())
		b.WriteString("\n\n")
	}

	if m.status != "" {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Danger).Render(m.status))
		b.WriteString("\n")
	}
	hint := "tab: next • enter: open • del: clear • q: done • ctrl+c: abort"
	b.WriteString(t.Renderer.NewStyle().Foreground(t.Subtext).Faint(true).Render(hint))
	return b.String()
}
