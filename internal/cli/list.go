package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/config-store/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Format string
}

// ValidListFormats defines the allowed list output formats.
var ValidListFormats = []string{"debug", "display", "json"}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		Long: `List all entries, one line per entry in storage order.

Formats:
  debug    Entry { _id: 1, name: "a", value: "v", alternate: "w" }
  display  a v w
  json     { "_id": "1", "name": "a", "value": "v", "alternate": "w" }

Example:
  config-store list --format display | awk '{print $1}'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "debug", "output format (debug|display|json)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	if !isValidListFormat(opts.Format) {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidListFormats), nil)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.List(context.Background())
	if err != nil {
		return wrapStoreError("failed to list entries", err)
	}

	out, err := store.FormatEntries(entries, store.ListFormat(opts.Format))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render entries", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// isValidListFormat checks if the format is one of the allowed values.
func isValidListFormat(format string) bool {
	for _, f := range ValidListFormats {
		if f == format {
			return true
		}
	}
	return false
}
