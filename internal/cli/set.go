package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// SetOptions holds flags for the set command.
type SetOptions struct {
	*RootOptions
	Value      string
	Alternate  string
	ChangeOnly bool
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Set / change a value and its alternate",
		Long: `Set / change a value and its alternate.

Creates the entry if it doesn't exist; fields not passed keep their current
content (or default to empty on creation). With --change-only, set refuses
to create new entries, so a typo in the name fails instead of silently
spawning a fresh entry.

Examples:
  config-store set feature_x --value off --alternate on
  config-store set feature_x --value dim --change-only`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Value, "value", "v", "", "the value")
	cmd.Flags().StringVarP(&opts.Alternate, "alternate", "a", "", "the alternate")
	cmd.Flags().BoolVarP(&opts.ChangeOnly, "change-only", "c", false, "only change entries; don't create new ones")

	return cmd
}

func runSet(opts *SetOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	// Distinguish "flag not passed" from "passed as empty": only flags the
	// user actually set reach the store as updates.
	var value, alternate *string
	if cmd.Flags().Changed("value") {
		value = &opts.Value
	}
	if cmd.Flags().Changed("alternate") {
		alternate = &opts.Alternate
	}

	if err := st.Set(context.Background(), name, value, alternate, opts.ChangeOnly); err != nil {
		return wrapStoreError("failed to set entry", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Ok")
	return nil
}
