package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ponteiro/internal/record"
	"github.com/roach88/ponteiro/internal/runid"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Deps Deps
}

// Deps are collaborators that tests can replace.
type Deps struct {
	// Allocator provides record storage. Defaults to record.HeapAllocator.
	Allocator record.Allocator

	// RunIDs generates run ids. Defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator
}

func (d Deps) withDefaults() Deps {
	if d.Allocator == nil {
		d.Allocator = record.HeapAllocator{}
	}
	if d.RunIDs == nil {
		d.RunIDs = runid.UUIDv7Generator{}
	}
	return d
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command with production dependencies.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithDeps(Deps{})
}

// NewRootCommandWithDeps creates the root command for the ponteiro CLI.
func NewRootCommandWithDeps(deps Deps) *cobra.Command {
	opts := &RootOptions{Deps: deps.withDefaults()}

	cmd := &cobra.Command{
		Use:   "ponteiro",
		Short: "ponteiro - record, factorial and option demo",
		Long: `A small demonstration program: it acquires a record, reports it,
prints a table of factorials and reports the outcome of an option code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewFactorialCommand(opts))
	cmd.AddCommand(NewOptionCommand(opts))
	cmd.AddCommand(NewValidateConfigCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger builds the stderr logger for a command. Warn keeps the console
// contract clean; --verbose switches to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// Execute runs the CLI with production dependencies and returns the
// process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return ExecuteWithDeps(ctx, Deps{}, args, stdout, stderr)
}

// ExecuteWithDeps is Execute with replaceable collaborators.
// Errors not already reported by a command are printed to stderr.
func ExecuteWithDeps(ctx context.Context, deps Deps, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommandWithDeps(deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}
