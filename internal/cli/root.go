package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/config-store/internal/config"
	"github.com/roach88/config-store/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database   string // --db, overrides the config file
	ConfigFile string // --config
	Verbose    bool
}

// NewRootCommand creates the root command for the config-store CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "config-store",
		Short: "A simple key-value store for shell scripts",
		Long: `config-store is a simple key-value store designed for use from shell scripts.

Each entry pairs a value with an alternate, so boolean-like settings can be
flipped with a single toggle command. Values are held in a SQLite database
(by default under /tmp, so they persist until reboot).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite database (overrides the config file)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewToggleCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDropCommand(opts))

	return cmd
}

// resolveDatabase returns the database path using the documented precedence:
// --db flag, then config file, then the built-in default.
func resolveDatabase(opts *RootOptions) (string, error) {
	if opts.Database != "" {
		return opts.Database, nil
	}
	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return "", err
		}
		return cfg.Database.Path, nil
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return "", err
	}
	return cfg.Database.Path, nil
}

// openStore resolves the database location and opens it, creating the file
// and the data table on first use. The caller owns closing the store.
func openStore(opts *RootOptions) (*store.Store, error) {
	path, err := resolveDatabase(opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	slog.Debug("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
