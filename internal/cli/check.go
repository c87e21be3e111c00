package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Check if an entry exists",
		Long: `Check if an entry exists.

Prints "true" or "false". Scripts can check before a --change-only set or
before falling back to a default.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *CheckOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	ok, err := st.Exists(context.Background(), name)
	if err != nil {
		return wrapStoreError("failed to check entry", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
	return nil
}
