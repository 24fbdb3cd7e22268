package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/ponteiro/internal/demo"
	"github.com/roach88/ponteiro/internal/option"
)

// NewOptionCommand creates the option command.
func NewOptionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option <code>",
		Short: "Print the outcome of an option code",
		Long: `Print the outcome selected by an option code: 1 and 2 have their own
message, every other code gets the fallback message.

Example:
  ponteiro option 2
  ponteiro option -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOption(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runOption(opts *RootOptions, arg string, cmd *cobra.Command) error {
	code, err := strconv.Atoi(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid option code %q", arg), err)
	}

	outcome := option.Select(code)

	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}
	if opts.Format == "json" {
		return formatter.Success(demo.OptionView{Code: code, Outcome: outcome.Code(), Message: outcome.String()})
	}
	return formatter.Success(outcome)
}
