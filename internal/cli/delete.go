package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an entry",
		Long: `Delete an entry.

Idempotent: deleting a name that doesn't exist is not an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	return cmd
}

func runDelete(opts *DeleteOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(context.Background(), name); err != nil {
		return wrapStoreError("failed to delete entry", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Ok")
	return nil
}
