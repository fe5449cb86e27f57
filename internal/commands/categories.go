package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/report"
)

func newCategoriesCommand(opts *options) *cobra.Command {
	var accounts []string
	var period string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Sum transactions per configured category",
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
			cats, err := report.ParseCategories(e.cfg.Categories)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cats) == 0 {
				fmt.Fprintf(out, "No categories configured in %s\n", opts.configPath)
				return nil
			}

			l, err := e.ledger()
			if err != nil {
				return err
			}
			for _, r := range report.Categorize(l.Filter(accounts...), cats) {
				printCategory(out, r, p, e.cfg.Currency)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&accounts, "account", nil, "only these accounts (repeatable)")
	cmd.Flags().StringVar(&period, "period", "month", "month, quarter or year")

	return cmd
}

func printCategory(w io.Writer, r report.CategoryReport, p report.Period, currency string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d rows)", r.Name, r.Rows)))

	rows := r.Monthly
	switch p {
	case report.Quarter:
		rows = r.Quarterly
	case report.Year:
		rows = r.Yearly
	}
	for _, a := range rows {
		if p == report.Month {
			fmt.Fprintf(w, "  %s %16s\n", a.Start.Format("2006-01"), styledMoney(a.Sum, currency))
			continue
		}
		fmt.Fprintf(w, "  %s %16s  avg %s\n", a.Start.Format("2006-01"), styledMoney(a.Sum, currency), styledMoney(a.Avg, currency))
	}
}
