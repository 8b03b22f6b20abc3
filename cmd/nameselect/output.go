package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/nameselector/pkg/config"
)

// formatResults renders chosen values. Unset values print as "name=" in text
// and null in JSON.
func formatResults(results []result, format string) (string, error) {
	switch format {
	case config.OutputJSON:
		obj := make(map[string]*string, len(results))
		for _, r := range results {
			obj[r.Name] = r.Value
		}
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode results: %w", err)
		}
		return string(data) + "\n", nil

	case config.OutputText, "":
		var b strings.Builder
		for _, r := range results {
			b.WriteString(r.Name)
			b.WriteString("=")
			if r.Value != nil {
				b.WriteString(*r.Value)
			}
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
