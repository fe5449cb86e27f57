package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/ledger"
	"github.com/wealth-dev/wealth/internal/report"
)

func newBalanceCommand(opts *options) *cobra.Command {
	var accounts []string
	var date string
	var period string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show account balances at a date, or balance statistics per period",
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

			out := cmd.OutOrStdout()
			if len(l.Transactions) == 0 {
				fmt.Fprintf(out, "No transactions in %s\n", e.csvDir)
				return nil
			}

			if period != "" {
				p, err := report.ParsePeriod(period)
				if err != nil {
					return err
				}
				printPeriodStats(out, report.PeriodStats(report.DailyBalances(l.Filter(accounts...)), p), p, e.cfg.Currency)
				return nil
			}

			at := l.Transactions[len(l.Transactions)-1].Date
			if date != "" {
				if at, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}
			printBalances(out, l, accounts, at, e.cfg.Currency)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&accounts, "account", nil, "only these accounts (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "balance date as YYYY-MM-DD (default: last transaction)")
	cmd.Flags().StringVar(&period, "period", "", "print min/mean/max per month, quarter or year instead")

	return cmd
}

func printBalances(w io.Writer, l *ledger.Ledger, accounts []string, at time.Time, currency string) {
	if len(accounts) == 0 {
		accounts = l.Accounts()
	}

	fmt.Fprintln(w, headerStyle.Render("Balance at "+at.Format("2006-01-02")))
	for _, a := range accounts {
		v, ok := report.BalanceAt(report.DailyBalances(l.Filter(a)), at)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-24s %s\n", a, styledMoney(v, currency))
	}
	if v, ok := report.BalanceAt(report.DailyBalances(l.Filter(accounts...)), at); ok {
		fmt.Fprintf(w, "%-24s %s\n", "total", styledMoney(v, currency))
	}
}

func printPeriodStats(w io.Writer, stats []report.Stat, p report.Period, currency string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %16s %16s %16s", p, "min", "mean", "max")))
	for _, s := range stats {
		fmt.Fprintf(w, "%-12s %16s %16s %16s\n",
			s.Start.Format("2006-01-02"),
			money(s.Min, currency), money(s.Mean, currency), money(s.Max, currency))
	}
}
