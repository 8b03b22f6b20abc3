// Package config loads the YAML description of the selectors the CLI shows.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Dicklesworthstone/nameselector/pkg/loader"
	"github.com/Dicklesworthstone/nameselector/pkg/selector"

	"gopkg.in/yaml.v3"
)

// Output formats for the chosen values
const (
	OutputText = "text"
	OutputJSON = "json"
)

// PlaceholderSetting is `placeholder: false|true|"text"` in YAML. Custom is
// set when the value was a string, even an empty one.
type PlaceholderSetting struct {
	Enabled bool
	Custom  bool
	Text    string
}

// UnmarshalYAML accepts a bool, a string or null
func (p *PlaceholderSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: placeholder must be a bool or a string", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*p = PlaceholderSetting{}
	case "!!bool":
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return err
		}
		*p = PlaceholderSetting{Enabled: enabled}
	default:
		*p = PlaceholderSetting{Enabled: true, Custom: true, Text: node.Value}
	}
	return nil
}

// Placeholder converts the setting for selector.Config
func (p PlaceholderSetting) Placeholder() selector.Placeholder {
	switch {
	case !p.Enabled:
		return selector.NoPlaceholder()
	case p.Custom:
		return selector.PlaceholderText(p.Text)
	default:
		return selector.DefaultPlaceholderText()
	}
}

// Field describes one selector
type Field struct {
	Name        string             `yaml:"name"`
	Label       string             `yaml:"label"`
	Placeholder PlaceholderSetting `yaml:"placeholder"`
	Required    bool               `yaml:"required"`
	Options     []string           `yaml:"options"`
	OptionsFile string             `yaml:"options_file"`
	Value       string             `yaml:"value"`
}

// InitialValue returns the configured value, or nil when unset
func (f Field) InitialValue() *string {
	if f.Value == "" {
		return nil
	}
	return selector.Value(f.Value)
}

// File is the whole configuration
type File struct {
	Output    string  `yaml:"output"`
	Selectors []Field `yaml:"selectors"`
}

// Load reads, resolves and validates the configuration at path. Relative
// options_file paths are resolved against the config's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes data, loads option files relative to baseDir and validates
func Parse(data []byte, baseDir string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.resolve(baseDir); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) resolve(baseDir string) error {
	if f.Output == "" {
		f.Output = OutputText
	}
	for i := range f.Selectors {
		field := &f.Selectors[i]
		if field.Name == "" {
			field.Name = field.Label
		}
		if field.OptionsFile == "" {
			continue
		}
		path := field.OptionsFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		extra, err := loader.LoadOptions(path)
		if err != nil {
			return fmt.Errorf("selector %q: %w", field.Name, err)
		}
		field.Options = append(field.Options, extra...)
	}
	return nil
}

// Validate checks the resolved configuration
func (f *File) Validate() error {
	if f.Output != OutputText && f.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %q or %q, got %q", selector.ErrInvalidConfig, OutputText, OutputJSON, f.Output)
	}
	if len(f.Selectors) == 0 {
		return fmt.Errorf("%w: at least one selector is required", selector.ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(f.Selectors))
	for i, field := range f.Selectors {
		if field.Label == "" {
			return fmt.Errorf("%w: selector %d: label cannot be empty", selector.ErrInvalidConfig, i)
		}
		if seen[field.Name] {
			return fmt.Errorf("%w: duplicate selector name %q", selector.ErrInvalidConfig, field.Name)
		}
		seen[field.Name] = true
		if field.Value != "" && !slices.Contains(field.Options, field.Value) {
			return fmt.Errorf("%w: selector %q: value %q is not an option", selector.ErrInvalidConfig, field.Name, field.Value)
		}
	}
	return nil
}
