package ui

import (
	"testing"

	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPointerEventFromMouse(t *testing.T) {
	if _, ok := PointerEventFromMouse(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}); ok {
		t.Error("Release must not produce a click")
	}
	if _, ok := PointerEventFromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}); ok {
		t.Error("Right button must not produce a click")
	}
	ev, ok := PointerEventFromMouse(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !ok || ev.X != 1 || ev.Y != 2 {
		t.Errorf("Expected click at (1,2), got %+v ok=%v", ev, ok)
	}
}

func TestClickRouterIndependentSelectors(t *testing.T) {
	registry := selector.NewRegistry()
	newSel := func(y int) *NameSelectorModel {
		cfg := selector.Config{
			Label:    "Field",
			Options:  []string{"a", "b"},
			SetValue: func(string) {},
			Variant:  selector.Locked{},
		}
		m, err := NewNameSelectorModel(cfg, testTheme(), discardLogger(), selector.WithRegistry(registry))
		if err != nil {
			t.Fatalf("NewNameSelectorModel: %v", err)
		}
		m.SetOrigin(0, y)
		return m
	}
	first, second := newSel(0), newSel(20)
	router := NewClickRouter(registry, first, second)
	settle := func(m *NameSelectorModel) { m.Update(deferredMsg{queue: m.queue}) }

	router.HandleMouse(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	settle(first)
	router.HandleMouse(tea.MouseMsg{X: 3, Y: 21, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	settle(second)

	// Opening the second selector was an outside click for the first.
	if first.Visible() {
		t.Error("Expected first selector closed by the click on the second")
	}
	if !second.Visible() {
		t.Error("Expected second selector open")
	}
	settle(first)
	if registry.Len() != 1 {
		t.Errorf("Expected exactly one live listener, got %d", registry.Len())
	}
}
