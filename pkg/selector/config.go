package selector

import "fmt"

// Variant decides whether a selection can be unset. It is either Clearable
// or Locked and never changes for the lifetime of a controller.
type Variant interface {
	required() bool
}

// Clearable selectors render a clear affordance that calls ClearValue
type Clearable struct {
	ClearValue func()
}

func (Clearable) required() bool { return false }

// Locked selectors require a value and cannot be cleared
type Locked struct{}

func (Locked) required() bool { return true }

// Placeholder controls the text shown while no value is selected.
// The zero value disables the placeholder.
type Placeholder struct {
	enabled bool
	custom  bool
	text    string
}

// NoPlaceholder disables placeholder display
func NoPlaceholder() Placeholder { return Placeholder{} }

// DefaultPlaceholderText enables the placeholder using DefaultPlaceholder
func DefaultPlaceholderText() Placeholder { return Placeholder{enabled: true} }

// PlaceholderText enables the placeholder with custom text. Empty text
// shows nothing and keeps the label, like an unset placeholder.
func PlaceholderText(text string) Placeholder {
	return Placeholder{enabled: true, custom: true, text: text}
}

// Enabled reports whether a placeholder replaces the label for an unset value
func (p Placeholder) Enabled() bool {
	return p.enabled && (!p.custom || p.text != "")
}

// Text returns the placeholder text, or "" when disabled
func (p Placeholder) Text() string {
	switch {
	case !p.enabled:
		return ""
	case p.custom:
		return p.text
	default:
		return DefaultPlaceholder
	}
}

// Config is the caller-owned description of a selector. It is treated as
// immutable between updates; Value only changes through SetValue.
type Config struct {
	Label       string
	Placeholder Placeholder
	Options     []string
	Value       *string
	SetValue    func(string)
	Variant     Variant
}

// Required reports whether the config uses the Locked variant
func (c Config) Required() bool {
	return c.Variant != nil && c.Variant.required()
}

// HasValue reports whether a value is selected. An empty string counts as
// unset.
func (c Config) HasValue() bool {
	return c.Value != nil && *c.Value != ""
}

// CurrentValue returns the selected value or ""
func (c Config) CurrentValue() string {
	if c.Value == nil {
		return ""
	}
	return *c.Value
}

// Validate checks the config at the construction boundary
func (c Config) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("%w: label cannot be empty", ErrInvalidConfig)
	}
	if c.SetValue == nil {
		return fmt.Errorf("%w: SetValue callback is required", ErrInvalidConfig)
	}
	switch v := c.Variant.(type) {
	case nil:
		return fmt.Errorf("%w: variant must be Clearable or Locked", ErrInvalidConfig)
	case Clearable:
		if v.ClearValue == nil {
			return fmt.Errorf("%w: Clearable requires a ClearValue callback", ErrInvalidConfig)
		}
	case *Clearable:
		return fmt.Errorf("%w: pass Clearable by value", ErrInvalidConfig)
	}
	return nil
}

// Value returns a pointer to s for use as Config.Value
func Value(s string) *string {
	return &s
}
