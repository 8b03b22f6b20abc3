package ui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// Rows above the first option inside the box: top border, filter input,
// divider.
const listHeaderRows = 3

type listKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

func defaultListKeyMap() listKeyMap {
	return listKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// FilteredListModel is the searchable list shown inside the popover. It
// reports a choice through setValue and gives up through cancel.
type FilteredListModel struct {
	// Data
	options  []string
	filtered []string
	value    string

	// UI State
	searchInput textinput.Model
	cursor      int
	offset      int
	keys        listKeyMap

	// Callbacks
	setValue func(string)
	cancel   func()

	// Dimensions
	width      int
	maxVisible int
	bounds     selector.Rect
	theme      Theme
}

// NewFilteredListModel creates a list over options with value highlighted
func NewFilteredListModel(options []string, value string, setValue func(string), cancel func(), theme Theme) *FilteredListModel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 64
	ti.Width = 30

	m := &FilteredListModel{
		searchInput: ti,
		keys:        defaultListKeyMap(),
		setValue:    setValue,
		cancel:      cancel,
		width:       40,
		maxVisible:  8,
		theme:       theme,
	}
	m.SetOptions(options, value)
	return m
}

// SetOptions replaces the candidates and the current value
func (m *FilteredListModel) SetOptions(options []string, value string) {
	m.options = options
	m.value = value
	m.filterItems()
}

// SetSize sets the box width and the number of visible rows
func (m *FilteredListModel) SetSize(width, maxVisible int) {
	if width < MinListWidth {
		width = MinListWidth
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	m.width = width
	m.maxVisible = maxVisible
	m.searchInput.Width = width - 8
	m.ensureVisible()
}

// SetOrigin records where the box was drawn
func (m *FilteredListModel) SetOrigin(x, y int) {
	m.bounds = selector.Rect{X: x, Y: y, Width: m.width, Height: m.Height()}
}

// Height returns the rendered height of the box
func (m *FilteredListModel) Height() int {
	rows := min(max(len(m.filtered), 1), m.maxVisible)
	// header, rows, footer hint, bottom border
	return listHeaderRows + rows + 2
}

// FocusInput focuses the filter field; the host starts the cursor blink
func (m *FilteredListModel) FocusInput() {
	if !m.searchInput.Focused() {
		m.searchInput.Focus()
	}
}

// Focused reports whether the filter field has focus
func (m *FilteredListModel) Focused() bool {
	return m.searchInput.Focused()
}

// IsPointerWithin reports whether p lies within the box
func (m *FilteredListModel) IsPointerWithin(p selector.Point) bool {
	return m.bounds.Contains(p)
}

// Reset clears the filter and blurs the input for the next opening
func (m *FilteredListModel) Reset() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.filterItems()
}

// Update handles keys and mouse input while the popover is open
func (m *FilteredListModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveBy(-1)
			return nil
		case key.Matches(msg, m.keys.Down):
			m.moveBy(1)
			return nil
		case key.Matches(msg, m.keys.PageUp):
			m.moveBy(-m.maxVisible)
			return nil
		case key.Matches(msg, m.keys.PageDown):
			m.moveBy(m.maxVisible)
			return nil
		case key.Matches(msg, m.keys.Home):
			m.moveBy(-len(m.filtered))
			return nil
		case key.Matches(msg, m.keys.End):
			m.moveBy(len(m.filtered))
			return nil
		case key.Matches(msg, m.keys.Select):
			m.selectCursor()
			return nil
		case key.Matches(msg, m.keys.Cancel):
			if m.cancel != nil {
				m.cancel()
			}
			return nil
		}

		before := m.searchInput.Value()
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != before {
			m.filterItems()
		}
		return cmd

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveBy(-1)
		case tea.MouseButtonWheelDown:
			m.moveBy(1)
		}
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return cmd
}

// HandleClick selects the option row under p. It returns true if p is
// inside the box.
func (m *FilteredListModel) HandleClick(p selector.Point) bool {
	if !m.bounds.Contains(p) {
		return false
	}
	row := p.Y - m.bounds.Y - listHeaderRows
	idx := m.offset + row
	if row >= 0 && row < m.maxVisible && idx < len(m.filtered) {
		m.cursor = idx
		m.selectCursor()
	}
	return true
}

func (m *FilteredListModel) selectCursor() {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return
	}
	if m.setValue != nil {
		m.setValue(m.filtered[m.cursor])
	}
}

func (m *FilteredListModel) moveBy(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.filtered)-1)
	m.ensureVisible()
}

func (m *FilteredListModel) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxVisible {
		m.offset = m.cursor - m.maxVisible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *FilteredListModel) filterItems() {
	query := strings.TrimSpace(m.searchInput.Value())
	m.offset = 0
	if query == "" {
		m.filtered = m.options
		m.cursor = max(slices.Index(m.filtered, m.value), 0)
		m.ensureVisible()
		return
	}

	matches := fuzzy.Find(query, m.options)
	m.filtered = make([]string, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.options[match.Index])
	}
	m.cursor = 0
}

// Query returns the current filter text
func (m *FilteredListModel) Query() string {
	return m.searchInput.Value()
}

// Visible returns the options that pass the filter, in display order
func (m *FilteredListModel) Visible() []string {
	return m.filtered
}

// Highlighted returns the option under the cursor, or ""
func (m *FilteredListModel) Highlighted() string {
	if m.cursor < len(m.filtered) {
		return m.filtered[m.cursor]
	}
	return ""
}

// View renders the list box
func (m *FilteredListModel) View() string {
	t := m.theme
	contentWidth := m.width - 4

	var lines []string
	lines = append(lines, m.searchInput.View())
	lines = append(lines, t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", contentWidth)))

	if len(m.filtered) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, emptyStyle.Render("  No matches"))
	} else {
		end := min(m.offset+m.maxVisible, len(m.filtered))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderItem(m.filtered[i], i == m.cursor, contentWidth))
		}
	}

	footerStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Faint(true)
	footer := strconv.Itoa(len(m.filtered)) + "/" + strconv.Itoa(len(m.options)) + " • enter: select • esc: cancel"
	lines = append(lines, footerStyle.Render(runewidth.Truncate(footer, contentWidth, "…")))

	return panelStyle(t).Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

func (m *FilteredListModel) renderItem(option string, isCursor bool, maxWidth int) string {
	t := m.theme

	prefix := "  "
	nameStyle := t.Renderer.NewStyle().Foreground(t.Base.GetForeground())
	if isCursor {
		prefix = glyphCursor
		nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
	}

	suffix := ""
	if option == m.value && m.value != "" {
		suffix = " " + glyphCurrent
	}

	room := maxWidth - runewidth.StringWidth(prefix) - runewidth.StringWidth(suffix)
	name := runewidth.Truncate(option, max(room, 1), "…")

	return nameStyle.Render(prefix+name) + t.Renderer.NewStyle().Foreground(t.Secondary).Render(suffix)
}
