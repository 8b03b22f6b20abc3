package selector

// DefaultPlaceholder is shown when the placeholder is enabled without custom
// text.
const DefaultPlaceholder = "Select a value…"

// ClearZoneID identifies the clear affordance for automated interaction
const ClearZoneID = "name-selector-clear"

// Display is everything a renderer needs to draw the trigger
type Display struct {
	Label     string
	Text      string
	UseLabel  bool
	Invalid   bool
	Active    bool
	ShowClear bool
}

// Derive computes the trigger display from the config and visibility
func Derive(cfg Config, visible bool) Display {
	d := Display{
		Label:     cfg.Label,
		Text:      cfg.CurrentValue(),
		UseLabel:  true,
		Invalid:   cfg.Required() && !cfg.HasValue(),
		Active:    visible,
		ShowClear: !cfg.Required() && cfg.HasValue(),
	}
	if !cfg.HasValue() {
		d.Text = ""
		if cfg.Placeholder.Enabled() {
			d.UseLabel = false
			d.Text = cfg.Placeholder.Text()
		}
	}
	return d
}
