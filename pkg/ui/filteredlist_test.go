package ui

import (
	"strings"
	"testing"

	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	tea "github.com/charmbracelet/bubbletea"
)

type listRecorder struct {
	set       []string
	cancelled int
}

func newRecordedList(options []string, value string) (*FilteredListModel, *listRecorder) {
	rec := &listRecorder{}
	m := NewFilteredListModel(options, value,
		func(v string) { rec.set = append(rec.set, v) },
		func() { rec.cancelled++ },
		testTheme())
	m.FocusInput()
	return m, rec
}

func typeQuery(m *FilteredListModel, query string) {
	for _, r := range query {
		m.Update(keyMsg(string(r)))
	}
}

func TestFilteredListFiltering(t *testing.T) {
	options := []string{"frontend", "redis", "driver", "route", "customer"}

	t.Run("EmptyFilter_ReturnsAllInOrder", func(t *testing.T) {
		m, _ := newRecordedList(options, "")
		got := m.Visible()
		if strings.Join(got, ",") != strings.Join(options, ",") {
			t.Errorf("Expected %v, got %v", options, got)
		}
	})

	t.Run("FuzzyMatch", func(t *testing.T) {
		m, _ := newRecordedList(options, "")
		typeQuery(m, "rds")
		got := m.Visible()
		if len(got) != 1 || got[0] != "redis" {
			t.Errorf("Expected [redis], got %v", got)
		}
	})

	t.Run("NoMatch_ReturnsEmpty", func(t *testing.T) {
		m, _ := newRecordedList(options, "")
		typeQuery(m, "zzz")
		if len(m.Visible()) != 0 {
			t.Errorf("Expected no matches, got %v", m.Visible())
		}
		if !strings.Contains(m.View(), "No matches") {
			t.Error("Expected empty-state row")
		}
	})

	t.Run("ClearingFilterRestoresAll", func(t *testing.T) {
		m, _ := newRecordedList(options, "")
		typeQuery(m, "rds")
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		if len(m.Visible()) != len(options) {
			t.Errorf("Expected %d options, got %d", len(options), len(m.Visible()))
		}
	})
}

func TestFilteredListKeepsDuplicates(t *testing.T) {
	m, _ := newRecordedList([]string{"a", "a", "b"}, "")
	if len(m.Visible()) != 3 {
		t.Errorf("Expected duplicates kept, got %v", m.Visible())
	}
}

func TestFilteredListCursorStartsOnValue(t *testing.T) {
	m, _ := newRecordedList([]string{"a", "b", "c"}, "c")
	if m.Highlighted() != "c" {
		t.Errorf("Expected cursor on current value c, got %q", m.Highlighted())
	}
	if !strings.Contains(m.View(), "c "+glyphCurrent) {
		t.Errorf("Expected current value marked, got:\n%s", m.View())
	}
}

func TestFilteredListCursorClamps(t *testing.T) {
	m, _ := newRecordedList([]string{"a", "b", "c"}, "")

	m.Update(keyMsg("up"))
	if m.Highlighted() != "a" {
		t.Errorf("Expected a at top, got %q", m.Highlighted())
	}

	for i := 0; i < 5; i++ {
		m.Update(keyMsg("down"))
	}
	if m.Highlighted() != "c" {
		t.Errorf("Expected c at bottom, got %q", m.Highlighted())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.Highlighted() != "a" {
		t.Errorf("Expected home to reach a, got %q", m.Highlighted())
	}
}

func TestFilteredListScrollsWithCursor(t *testing.T) {
	options := make([]string, 20)
	for i := range options {
		options[i] = "opt" + string(rune('a'+i))
	}
	m, _ := newRecordedList(options, "")
	m.SetSize(40, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.Highlighted() != options[19] {
		t.Errorf("Expected last option, got %q", m.Highlighted())
	}
	if m.offset != 15 {
		t.Errorf("Expected offset 15, got %d", m.offset)
	}
	view := m.View()
	if !strings.Contains(view, options[19]) || strings.Contains(view, options[0]+" ") {
		t.Errorf("Expected window scrolled to the end, got:\n%s", view)
	}
}

func TestFilteredListSelectAndCancel(t *testing.T) {
	m, rec := newRecordedList([]string{"a", "b"}, "")

	m.Update(keyMsg("down"))
	m.Update(keyMsg("enter"))
	if len(rec.set) != 1 || rec.set[0] != "b" {
		t.Errorf("Expected b selected, got %v", rec.set)
	}

	m.Update(keyMsg("esc"))
	if rec.cancelled != 1 {
		t.Errorf("Expected cancel once, got %d", rec.cancelled)
	}
}

func TestFilteredListEnterWithNoMatches(t *testing.T) {
	m, rec := newRecordedList([]string{"a"}, "")
	typeQuery(m, "zz")
	m.Update(keyMsg("enter"))
	if len(rec.set) != 0 {
		t.Errorf("Expected nothing selected, got %v", rec.set)
	}
}

func TestFilteredListHandleClick(t *testing.T) {
	m, rec := newRecordedList([]string{"a", "b", "c"}, "")
	m.SetSize(30, 5)
	m.SetOrigin(10, 4)

	if m.HandleClick(selector.Point{X: 2, Y: 4}) {
		t.Error("Click left of the box must not be handled")
	}
	if !m.HandleClick(selector.Point{X: 12, Y: 5}) {
		t.Error("Click on the filter row must be handled")
	}
	if len(rec.set) != 0 {
		t.Errorf("Filter row click must not select, got %v", rec.set)
	}

	m.HandleClick(selector.Point{X: 12, Y: 4 + listHeaderRows + 2})
	if len(rec.set) != 1 || rec.set[0] != "c" {
		t.Errorf("Expected c selected by click, got %v", rec.set)
	}
}

func TestFilteredListPointerWithin(t *testing.T) {
	m, _ := newRecordedList([]string{"a"}, "")
	m.SetSize(30, 5)
	m.SetOrigin(0, 3)

	if !m.IsPointerWithin(selector.Point{X: 0, Y: 3}) {
		t.Error("Expected top-left corner within")
	}
	if m.IsPointerWithin(selector.Point{X: 30, Y: 3}) {
		t.Error("Expected column past width outside")
	}
	if m.IsPointerWithin(selector.Point{X: 0, Y: 3 + m.Height()}) {
		t.Error("Expected row past height outside")
	}
}

func TestFilteredListFocusAndReset(t *testing.T) {
	m := NewFilteredListModel([]string{"a", "b"}, "", nil, nil, testTheme())
	if m.Focused() {
		t.Error("Expected list input to start blurred")
	}

	m.Update(keyMsg("b"))
	if m.Query() != "" {
		t.Error("Blurred input must not accept text")
	}

	m.FocusInput()
	m.FocusInput()
	if !m.Focused() {
		t.Error("Expected focus")
	}
	typeQuery(m, "b")
	m.Reset()
	if m.Query() != "" || m.Focused() || len(m.Visible()) != 2 {
		t.Errorf("Expected reset state, got query=%q focused=%v visible=%v", m.Query(), m.Focused(), m.Visible())
	}
}

func TestFilteredListWheel(t *testing.T) {
	m, _ := newRecordedList([]string{"a", "b"}, "")
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.Highlighted() != "b" {
		t.Errorf("Expected wheel down to move cursor, got %q", m.Highlighted())
	}
}
