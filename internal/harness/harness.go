package harness

import (
	"bytes"
	"context"

	"github.com/roach88/ponteiro/internal/cli"
	"github.com/roach88/ponteiro/internal/record"
	"github.com/roach88/ponteiro/internal/runid"
)

// Run executes a scenario through the CLI and evaluates its assertions.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}

	runID := scenario.RunID
	if runID == "" {
		runID = DefaultRunID
	}

	deps := cli.Deps{RunIDs: runid.NewFixedGenerator(runID)}
	if scenario.FailAllocation {
		deps.Allocator = record.FailingAllocator{}
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := cli.ExecuteWithDeps(ctx, deps, scenario.Args, stdout, stderr)

	result := NewResult()
	result.ExitCode = code
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}
