package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// DropOptions holds flags for the drop command.
type DropOptions struct {
	*RootOptions
}

// NewDropCommand creates the drop command.
func NewDropCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DropOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Delete all entries !! BE VERY CAREFUL WITH THIS !!",
		Long: `Delete all entries !! BE VERY CAREFUL WITH THIS !!

Irreversible. The database file itself stays in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrop(opts, cmd)
		},
	}

	return cmd
}

func runDrop(opts *DropOptions, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Drop(context.Background()); err != nil {
		return wrapStoreError("failed to drop entries", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Ok")
	return nil
}
