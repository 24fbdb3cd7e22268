package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRunID is used when a scenario does not name one.
const DefaultRunID = "scenario-run"

// Scenario is one end-to-end invocation of the CLI plus its expectations.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Args are the CLI arguments, without the program name.
	Args []string `yaml:"args"`

	// FailAllocation forces record acquisition to fail.
	FailAllocation bool `yaml:"fail_allocation,omitempty"`

	// RunID fixes the run id. Defaults to DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Assertions validate the exit code and captured streams.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one aspect of a scenario's result.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Stream selects "stdout" (default) or "stderr".
	Stream string `yaml:"stream,omitempty"`

	// Code is the expected exit code (exit_code).
	Code int `yaml:"code,omitempty"`

	// Text is the expected substring (contains, not_contains).
	Text string `yaml:"text,omitempty"`

	// Count is the expected number of lines (line_count).
	Count int `yaml:"count,omitempty"`

	// Lines is the expected line order (line_order).
	Lines []string `yaml:"lines,omitempty"`
}

// Assertion type constants.
const (
	AssertExitCode    = "exit_code"
	AssertContains    = "contains"
	AssertNotContains = "not_contains"
	AssertLineCount   = "line_count"
	AssertLineOrder   = "line_order"
)

// Stream names.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Args) == 0 {
		return fmt.Errorf("args list is required and must be non-empty")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertion[%d]: %w", i, err)
		}
	}

	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Stream {
	case "", StreamStdout, StreamStderr:
	default:
		return fmt.Errorf("unknown stream %q", a.Stream)
	}

	switch a.Type {
	case AssertExitCode:
		return nil
	case AssertContains, AssertNotContains:
		if a.Text == "" {
			return fmt.Errorf("%s requires text", a.Type)
		}
	case AssertLineCount:
		if a.Count < 0 {
			return fmt.Errorf("line_count requires a non-negative count")
		}
	case AssertLineOrder:
		if len(a.Lines) == 0 {
			return fmt.Errorf("line_order requires lines")
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
