package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func displayConfig(value *string, placeholder Placeholder, required bool) Config {
	cfg := Config{
		Label:       "Operation",
		Placeholder: placeholder,
		Value:       value,
		SetValue:    func(string) {},
		Variant:     Clearable{ClearValue: func() {}},
	}
	if required {
		cfg.Variant = Locked{}
	}
	return cfg
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		ph       Placeholder
		required bool
		visible  bool
		want     Display
	}{
		{
			name: "unset without placeholder",
			ph:   NoPlaceholder(),
			want: Display{Label: "Operation", UseLabel: true},
		},
		{
			name: "unset with default placeholder",
			ph:   DefaultPlaceholderText(),
			want: Display{Label: "Operation", Text: DefaultPlaceholder},
		},
		{
			name: "unset with custom placeholder",
			ph:   PlaceholderText("Pick one"),
			want: Display{Label: "Operation", Text: "Pick one"},
		},
		{
			name: "unset with empty custom placeholder",
			ph:   PlaceholderText(""),
			want: Display{Label: "Operation", UseLabel: true},
		},
		{
			name:     "unset required with empty custom placeholder",
			ph:       PlaceholderText(""),
			required: true,
			want:     Display{Label: "Operation", UseLabel: true, Invalid: true},
		},
		{
			name:     "unset required is invalid",
			ph:       DefaultPlaceholderText(),
			required: true,
			want:     Display{Label: "Operation", Text: DefaultPlaceholder, Invalid: true},
		},
		{
			name:  "set clearable",
			value: Value("GET /api"),
			ph:    DefaultPlaceholderText(),
			want:  Display{Label: "Operation", Text: "GET /api", UseLabel: true, ShowClear: true},
		},
		{
			name:     "set required",
			value:    Value("GET /api"),
			ph:       PlaceholderText("Pick one"),
			required: true,
			want:     Display{Label: "Operation", Text: "GET /api", UseLabel: true},
		},
		{
			name:    "open is active",
			value:   Value("a"),
			ph:      NoPlaceholder(),
			visible: true,
			want:    Display{Label: "Operation", Text: "a", UseLabel: true, Active: true, ShowClear: true},
		},
		{
			name:  "empty string counts as unset",
			value: Value(""),
			ph:    DefaultPlaceholderText(),
			want:  Display{Label: "Operation", Text: DefaultPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(displayConfig(tt.value, tt.ph, tt.required), tt.visible)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveRequiredNeverShowsClear(t *testing.T) {
	for _, value := range []*string{nil, Value(""), Value("a")} {
		for _, ph := range []Placeholder{NoPlaceholder(), DefaultPlaceholderText(), PlaceholderText("x")} {
			for _, visible := range []bool{false, true} {
				d := Derive(displayConfig(value, ph, true), visible)
				assert.False(t, d.ShowClear)
			}
		}
	}
}

func TestPlaceholderText(t *testing.T) {
	assert.Equal(t, "", NoPlaceholder().Text())
	assert.Equal(t, DefaultPlaceholder, DefaultPlaceholderText().Text())
	assert.Equal(t, "Pick one", PlaceholderText("Pick one").Text())
	assert.False(t, Placeholder{}.Enabled())
}
