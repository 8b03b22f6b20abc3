package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/nameselector/pkg/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptionsByExtension(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{
			name:    "plain lines",
			file:    "services.txt",
			content: "frontend\n\n  redis  \n# comment\ndriver\n",
			want:    []string{"frontend", "redis", "driver"},
		},
		{
			name:    "jsonl strings and objects",
			file:    "services.jsonl",
			content: "\"frontend\"\n{\"name\":\"redis\"}\nnot json\n{\"other\":1}\n\"\"\n",
			want:    []string{"frontend", "redis"},
		},
		{
			name:    "yaml sequence",
			file:    "services.YAML",
			content: "- frontend\n- redis\n",
			want:    []string{"frontend", "redis"},
		},
		{
			name:    "empty yaml",
			file:    "empty.yml",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.LoadOptions(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := loader.LoadOptions(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no options file found")
}

func TestLoadOptionsBadYAML(t *testing.T) {
	_, err := loader.LoadOptions(writeFile(t, "bad.yaml", "key: [unclosed"))
	require.Error(t, err)
}

func TestReadLinesKeepsDuplicatesAndOrder(t *testing.T) {
	got, err := loader.ReadLines(strings.NewReader("b\na\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, got)
}
