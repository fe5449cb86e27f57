package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/report"
)

func newExpensesCommand(opts *options) *cobra.Command {
	var accounts []string
	var period string
	var periods, rows int
	var internal bool

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List the biggest expenses per period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := report.ParsePeriod(period)
			if err != nil {
				return err
			}
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			l, err := e.ledger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result := report.BiggestExpenses(l.Filter(accounts...), p, rows, internal)
			if len(result) > periods {
				result = result[:periods]
			}
			for _, ep := range result {
				end := p.Next(ep.Start).AddDate(0, 0, -1)
				fmt.Fprintln(out, headerStyle.Render(ep.Start.Format("Mon, 2006-01-02")+" - "+end.Format("Mon, 2006-01-02")))
				for _, txn := range ep.Rows {
					fmt.Fprintf(out, "  %s %-16s %14s  %s\n",
						txn.Date.Format("2006-01-02"), txn.Account, styledMoney(txn.Amount, e.cfg.Currency), txn.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&accounts, "account", nil, "only these accounts (repeatable)")
	cmd.Flags().StringVar(&period, "period", "month", "month, quarter or year")
	cmd.Flags().IntVar(&periods, "periods", 1, "number of most recent periods to show")
	cmd.Flags().IntVar(&rows, "rows", 5, "expenses per period")
	cmd.Flags().BoolVar(&internal, "internal", true, "include transfers between own accounts")

	return cmd
}
