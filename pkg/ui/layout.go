package ui

// Dimension constraints for the selector widgets
const (
	// MinTriggerWidth is the narrowest trigger that still fits a label,
	// a few characters of value and both glyphs.
	MinTriggerWidth = 20

	// MinListWidth is the narrowest popover list box.
	MinListWidth = 24

	// DefaultTriggerWidth is used until the host sets a width.
	DefaultTriggerWidth = 40

	// TriggerHeight is the bordered single-line trigger.
	TriggerHeight = 3

	// MaxListRows caps the visible option rows in the popover.
	MaxListRows = 10
)
