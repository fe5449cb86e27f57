package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/report"
)

func newInflationCommand(opts *options) *cobra.Command {
	var startCost, endCost float64
	var startYear, endYear int

	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Derive an inflation rate and project costs to retirement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("end-year") {
				endYear = e.cfg.RetirementYear()
			}

			out := cmd.OutOrStdout()
			start := decimal.NewFromFloat(startCost)
			rate, err := report.InflationRate(start, decimal.NewFromFloat(endCost), startYear, endYear)
			switch {
			case errors.Is(err, report.ErrUndefinedRate):
				fmt.Fprintln(out, "The linear inflation rate is n/a")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "The linear inflation rate is %.2f%%\n", rate*100)
			}

			projected := report.FutureCost(start, e.cfg.InflationRate, endYear-startYear)
			fmt.Fprintf(out, "%s in %d costs %s in %d at %.2f%% inflation\n",
				money(start, e.cfg.Currency), startYear, money(projected, e.cfg.Currency), endYear, e.cfg.InflationRate*100)
			worth := report.RealValue(start, e.cfg.InflationRate, endYear-startYear)
			fmt.Fprintf(out, "%s in %d is worth %s in %d\n",
				money(start, e.cfg.Currency), endYear, money(worth, e.cfg.Currency), startYear)
			return nil
		},
	}

	cmd.Flags().Float64Var(&startCost, "start-cost", 100, "cost in the start year")
	cmd.Flags().Float64Var(&endCost, "end-cost", 200, "cost in the end year")
	cmd.Flags().IntVar(&startYear, "start-year", time.Now().Year(), "start year")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "end year (default: retirement year from the config)")

	return cmd
}
