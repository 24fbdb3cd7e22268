package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Captured stream, for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Output != "" {
		fmt.Fprintf(&buf, "\nOutput:\n")
		for i, line := range lines(e.Output) {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
		}
	}

	return buf.String()
}

// lines splits output on newlines, ignoring the final terminator.
func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func streamName(a Assertion) string {
	if a.Stream == "" {
		return StreamStdout
	}
	return a.Stream
}

func assertExitCode(result *Result, a Assertion) error {
	if result.ExitCode == a.Code {
		return nil
	}
	return &AssertionError{
		Type:     AssertExitCode,
		Expected: fmt.Sprintf("exit code %d", a.Code),
		Actual:   fmt.Sprintf("exit code %d", result.ExitCode),
		Output:   result.Stderr,
	}
}

func assertContains(result *Result, a Assertion) error {
	out := result.stream(a.Stream)
	if strings.Contains(out, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertContains,
		Expected: fmt.Sprintf("%s contains %q", streamName(a), a.Text),
		Actual:   "not found",
		Output:   out,
	}
}

func assertNotContains(result *Result, a Assertion) error {
	out := result.stream(a.Stream)
	if !strings.Contains(out, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertNotContains,
		Expected: fmt.Sprintf("%s does not contain %q", streamName(a), a.Text),
		Actual:   "found",
		Output:   out,
	}
}

func assertLineCount(result *Result, a Assertion) error {
	out := result.stream(a.Stream)
	n := len(lines(out))
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertLineCount,
		Expected: fmt.Sprintf("%d lines on %s", a.Count, streamName(a)),
		Actual:   fmt.Sprintf("%d lines", n),
		Output:   out,
	}
}

// assertLineOrder checks that the expected lines appear in order.
// Lines don't need to be consecutive.
func assertLineOrder(result *Result, a Assertion) error {
	out := result.stream(a.Stream)
	got := lines(out)

	next := 0
	for _, line := range got {
		if next < len(a.Lines) && line == a.Lines[next] {
			next++
		}
	}
	if next == len(a.Lines) {
		return nil
	}

	return &AssertionError{
		Type:     AssertLineOrder,
		Expected: fmt.Sprintf("lines in order %q", a.Lines),
		Actual:   fmt.Sprintf("matched %d of %d, missing %q", next, len(a.Lines), a.Lines[next]),
		Output:   out,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertExitCode:
			err = assertExitCode(result, assertion)
		case AssertContains:
			err = assertContains(result, assertion)
		case AssertNotContains:
			err = assertNotContains(result, assertion)
		case AssertLineCount:
			err = assertLineCount(result, assertion)
		case AssertLineOrder:
			err = assertLineOrder(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
