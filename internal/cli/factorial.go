package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/ponteiro/internal/factorial"
)

// NewFactorialCommand creates the factorial command.
func NewFactorialCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print n!",
		Long: `Print n! for 0 <= n <= 20.

Negative n is rejected with an invalid-argument error. Pass negative
numbers after "--" so they are not read as flags.

Example:
  ponteiro factorial 9
  ponteiro factorial -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactorial(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runFactorial(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid number %q", arg), err)
	}

	value, err := factorial.Of(n)
	if err != nil {
		code := ErrCodeGeneric
		switch {
		case errors.Is(err, factorial.ErrInvalidArgument):
			code = ErrCodeInvalidArgument
		case errors.Is(err, factorial.ErrOverflow):
			code = ErrCodeOverflow
		}
		_ = formatter.Error(code, err.Error(), nil)
		return reportedExitError(ExitCommandError, "factorial failed", err)
	}

	return formatter.Success(factorial.Entry{N: n, Value: value})
}
