// Package loader reads candidate option lists for selectors.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads options from path. The extension picks the format:
// .jsonl holds one JSON string or {"name": ...} object per line, .yaml/.yml
// a sequence of strings, anything else one option per line.
func LoadOptions(path string) ([]string, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no options file found at %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer file.Close()

	var options []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		options, err = ReadJSONL(file)
	case ".yaml", ".yml":
		options, err = ReadYAML(file)
	default:
		options, err = ReadLines(file)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading options file %s: %w", path, err)
	}
	return options, nil
}

// ReadLines returns each non-blank line, trimmed. Lines starting with # are
// comments.
func ReadLines(r io.Reader) ([]string, error) {
	var options []string
	err := scan(r, func(line []byte) {
		text := strings.TrimSpace(string(line))
		if text == "" || strings.HasPrefix(text, "#") {
			return
		}
		options = append(options, text)
	})
	return options, err
}

type namedOption struct {
	Name string `json:"name"`
}

// ReadJSONL returns the option on each line. Malformed lines are skipped
func ReadJSONL(r io.Reader) ([]string, error) {
	var options []string
	err := scan(r, func(line []byte) {
		if len(line) == 0 {
			return
		}

		var s string
		if err := json.Unmarshal(line, &s); err == nil {
			if s != "" {
				options = append(options, s)
			}
			return
		}

		var named namedOption
		if err := json.Unmarshal(line, &named); err != nil || named.Name == "" {
			// Skip malformed lines but continue loading the rest
			return
		}
		options = append(options, named.Name)
	})
	return options, err
}

// ReadYAML decodes a YAML sequence of strings
func ReadYAML(r io.Reader) ([]string, error) {
	var options []string
	if err := yaml.NewDecoder(r).Decode(&options); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml options: %w", err)
	}
	return options, nil
}

func scan(r io.Reader, fn func(line []byte)) error {
	scanner := bufio.NewScanner(r)
	// Option names are short, but generated catalogs can carry long lines
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		fn(scanner.Bytes())
	}
	return scanner.Err()
}
