package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "loads"
args: [run, --option, "1"]
fail_allocation: true
run_id: fixed
assertions:
  - type: exit_code
    code: 1
  - type: contains
    stream: stderr
    text: boom
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, []string{"run", "--option", "1"}, s.Args)
	assert.True(t, s.FailAllocation)
	assert.Equal(t, "fixed", s.RunID)
	require.Len(t, s.Assertions, 2)
	assert.Equal(t, StreamStderr, s.Assertions[1].Stream)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown field", "name: a\ndescription: b\nargs: [run]\nassertion: []\n", "failed to parse YAML"},
		{"missing name", "description: b\nargs: [run]\n", "name is required"},
		{"missing description", "name: a\nargs: [run]\n", "description is required"},
		{"missing args", "name: a\ndescription: b\n", "args list is required"},
		{"unknown assertion", "name: a\ndescription: b\nargs: [run]\nassertions:\n  - type: magic\n", "unknown assertion type"},
		{"unknown stream", "name: a\ndescription: b\nargs: [run]\nassertions:\n  - type: exit_code\n    stream: stdin\n", "unknown stream"},
		{"contains without text", "name: a\ndescription: b\nargs: [run]\nassertions:\n  - type: contains\n", "contains requires text"},
		{"line_order without lines", "name: a\ndescription: b\nargs: [run]\nassertions:\n  - type: line_order\n", "line_order requires lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
