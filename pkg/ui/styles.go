package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorBgHighlight = lipgloss.Color("#44475A")

	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorSecondary = lipgloss.Color("#6272A4")
	ColorDanger    = lipgloss.Color("#FF5555")
)

// Theme carries the renderer and semantic colors used by every widget
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// DefaultTheme returns the standard palette bound to renderer
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#5A6A9A", Dark: string(ColorSecondary)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: string(ColorBgHighlight)},
		Danger:    lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: string(ColorDanger)},
		Base:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: string(ColorText)}),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// SELECTOR GLYPHS
// ══════════════════════════════════════════════════════════════════════════════

const (
	glyphChevron = "▾"
	glyphClear   = "✕"
	glyphCursor  = "▸ "
	glyphCurrent = "✓"
)

// triggerStyle returns the trigger frame for the active and invalid flags
func triggerStyle(t Theme, active, invalid bool) lipgloss.Style {
	border := t.Border
	switch {
	case invalid:
		border = t.Danger
	case active:
		border = t.Primary
	}
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// panelStyle returns the popover panel frame
func panelStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
}
