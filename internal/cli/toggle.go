package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// ToggleOptions holds flags for the toggle command.
type ToggleOptions struct {
	*RootOptions
}

// NewToggleCommand creates the toggle command.
func NewToggleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ToggleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "toggle <name>",
		Short: "Toggle an entry between its value and its alternate",
		Long: `Toggle an entry between its value and its alternate.

Swaps the stored value and alternate and prints the new value, so a single
call flips a boolean-like pair and reports the new active state.

Example:
  config-store toggle feature_x`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(opts, args[0], cmd)
		},
	}

	return cmd
}

func runToggle(opts *ToggleOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	newValue, err := st.Toggle(context.Background(), name)
	if err != nil {
		return wrapStoreError("failed to toggle entry", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), newValue)
	return nil
}
