package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	ValueOnly     bool
	AlternateOnly bool
	JSON          bool
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get a value and its alternate",
		Long: `Get a value and its alternate.

By default prints "value alternate" space-joined. --value-only and
--alternate-only narrow the output to one field; --json prints the entry as
a single-line JSON object.

Examples:
  config-store get feature_x
  config-store get feature_x --value-only
  config-store get feature_x --json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.ValueOnly, "value-only", "v", false, "only get the value")
	cmd.Flags().BoolVarP(&opts.AlternateOnly, "alternate-only", "a", false, "only get the alternate")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the entry as JSON")
	cmd.MarkFlagsMutuallyExclusive("value-only", "alternate-only", "json")

	return cmd
}

func runGet(opts *GetOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	entry, err := st.Get(context.Background(), name)
	if err != nil {
		return wrapStoreError("failed to get entry", err)
	}

	var out string
	switch {
	case opts.ValueOnly:
		out = entry.Value
	case opts.AlternateOnly:
		out = entry.Alternate
	case opts.JSON:
		out = entry.JSON()
	default:
		out = entry.Pair()
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
