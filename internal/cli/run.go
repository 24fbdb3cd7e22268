package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ponteiro/internal/config"
	"github.com/roach88/ponteiro/internal/demo"
	"github.com/roach88/ponteiro/internal/record"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string

	// Overrides, applied only when the flag was set explicitly.
	ID         int
	Name       string
	Option     int
	Count      int
	NamePolicy string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration sequence",
		Long: `Acquire a record, report it, print n! for n in [0, count) and report
the outcome of the option code. The record is released before exit.

Settings come from built-in defaults, then the optional --config YAML
file, then flags that were set explicitly.

Exit codes:
  0  success
  1  record storage could not be acquired
  2  invalid flags or config

Example:
  ponteiro run
  ponteiro run --option 1 --count 5
  ponteiro run --config ./ponteiro.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().IntVar(&opts.ID, "id", config.DefaultID, "record id")
	cmd.Flags().StringVar(&opts.Name, "name", config.DefaultName, "record name")
	cmd.Flags().IntVar(&opts.Option, "option", config.DefaultOption, "option code")
	cmd.Flags().IntVar(&opts.Count, "count", config.DefaultCount, "number of factorials to print, starting at 0")
	cmd.Flags().StringVar(&opts.NamePolicy, "name-policy", config.DefaultNamePolicy, "over-long names: truncate|reject")

	return cmd
}

// resolveConfig merges defaults, the config file and explicit flags.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("id") {
		cfg.ID = opts.ID
	}
	if flags.Changed("name") {
		cfg.Name = opts.Name
	}
	if flags.Changed("option") {
		cfg.Option = opts.Option
	}
	if flags.Changed("count") {
		cfg.Count = opts.Count
	}
	if flags.Changed("name-policy") {
		cfg.NamePolicy = opts.NamePolicy
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runDemo(opts *RunOptions, cmd *cobra.Command) error {
	deps := opts.Deps.withDefaults()
	runID := deps.RunIDs.Generate()
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run_id", runID)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   runID,
	}

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidConfig, fmt.Sprintf("invalid configuration: %v", err), nil)
		return reportedExitError(ExitCommandError, "invalid configuration", err)
	}
	logger.Debug("config resolved",
		"id", cfg.ID, "option", cfg.Option, "count", cfg.Count, "name_policy", cfg.NamePolicy)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := demo.New(deps.Allocator, logger)

	if opts.Format == "json" {
		collector := demo.NewCollector()
		if err := runner.Run(ctx, cfg, collector); err != nil {
			return handleRunError(formatter, logger, err)
		}
		if err := formatter.Success(collector.Report); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
		return nil
	}

	if err := runner.Run(ctx, cfg, demo.TextEmitter{W: cmd.OutOrStdout()}); err != nil {
		return handleRunError(formatter, logger, err)
	}
	return nil
}

// handleRunError reports a failed run and picks its exit code.
func handleRunError(formatter *OutputFormatter, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, record.ErrAllocation):
		logger.Error("record allocation failed", "error", err)
		if formatter.Format == "json" {
			_ = formatter.Error(ErrCodeAllocation, AllocationFailureMessage, err.Error())
		} else {
			fmt.Fprintln(formatter.GetErrWriter(), AllocationFailureMessage)
		}
		return reportedExitError(ExitFailure, AllocationFailureMessage, err)

	case errors.Is(err, record.ErrNameTooLong):
		_ = formatter.Error(ErrCodeNameTooLong, fmt.Sprintf("record name rejected: %v", err), nil)
		return reportedExitError(ExitCommandError, "record name rejected", err)

	default:
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("run failed: %v", err), nil)
		return reportedExitError(ExitFailure, "run failed", err)
	}
}
