package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Build metadata, set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	csvDir     string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "wealth",
		Short:   "Personal finance reports from bank CSV exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", filepath.Join("config", "config.yml"), "path to config.yml")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.csvDir, "csv-dir", "", "directory of bank exports, overrides csv_dir from the config")

	rootCmd.AddCommand(
		newInitCommand(),
		newLedgerCommand(opts),
		newBalanceCommand(opts),
		newCategoriesCommand(opts),
		newTrackCommand(opts),
		newInflationCommand(opts),
		newInterestCommand(opts),
		newExpensesCommand(opts),
	)

	return rootCmd
}
