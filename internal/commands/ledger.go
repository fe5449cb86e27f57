package commands

import (
	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/ledger"
)

func newLedgerCommand(opts *options) *cobra.Command {
	var accounts []string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print the assembled ledger as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			l, err := e.ledger()
			if err != nil {
				return err
			}
			return ledger.WriteCSV(cmd.OutOrStdout(), l.Filter(accounts...))
		},
	}

	cmd.Flags().StringSliceVar(&accounts, "account", nil, "only rows of these accounts (repeatable)")

	return cmd
}
