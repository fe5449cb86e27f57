package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/report"
)

func newInterestCommand(opts *options) *cobra.Command {
	var startAmount, regularDeposit, rate, inflation float64
	var startDate, depositAt string
	var depositsPerYear, compoundsPerYear, years int
	var oneOff []string
	var table bool

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Project a savings account with compound interest and regular deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("inflation") {
				inflation = e.cfg.InflationRate
			}

			at, err := report.ParseDepositTime(depositAt)
			if err != nil {
				return err
			}
			start := time.Now().UTC().Truncate(24 * time.Hour)
			if startDate != "" {
				if start, err = time.Parse("2006-01-02", startDate); err != nil {
					return fmt.Errorf("parsing --start-date: %w", err)
				}
			}
			events, err := parseOneOffs(oneOff)
			if err != nil {
				return err
			}

			plan := report.Plan{
				StartAmount:      decimal.NewFromFloat(startAmount),
				StartDate:        start,
				RegularDeposit:   decimal.NewFromFloat(regularDeposit),
				DepositsPerYear:  depositsPerYear,
				InterestRate:     decimal.NewFromFloat(rate),
				CompoundsPerYear: compoundsPerYear,
				Years:            years,
				DepositTime:      at,
				Events:           events,
			}
			steps := report.Develop(plan.History(), inflation)

			out := cmd.OutOrStdout()
			printInterestSummary(out, plan, report.Summarize(steps), e.cfg.CapitalGainsTaxRate, e.cfg.Currency)
			if table {
				printSteps(out, steps, e.cfg.Currency)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&startAmount, "start-amount", 1000, "initial deposit")
	f.StringVar(&startDate, "start-date", "", "first day as YYYY-MM-DD (default: today)")
	f.Float64Var(&regularDeposit, "regular-deposit", 100, "amount of each regular deposit")
	f.IntVar(&depositsPerYear, "deposits-per-year", 12, "regular deposits per year")
	f.Float64Var(&rate, "rate", 0.04, "yearly interest rate, e.g. 0.04")
	f.IntVar(&compoundsPerYear, "compounds-per-year", 12, "interest payments per year")
	f.IntVar(&years, "years", 10, "years to project")
	f.StringVar(&depositAt, "deposit-at", "start", "regular deposits at period start or end")
	f.Float64Var(&inflation, "inflation", 0, "yearly inflation rate (default: inflation_rate from the config)")
	f.StringSliceVar(&oneOff, "deposit", nil, "one-off deposit as YYYY-MM-DD=AMOUNT, negative to withdraw (repeatable)")
	f.BoolVar(&table, "table", false, "print every event")

	return cmd
}

func parseOneOffs(specs []string) ([]report.Event, error) {
	events := make([]report.Event, 0, len(specs))
	for _, s := range specs {
		date, amount, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("deposit %q: want YYYY-MM-DD=AMOUNT", s)
		}
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("deposit %q: %w", s, err)
		}
		a, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("deposit %q: %w", s, err)
		}
		events = append(events, report.Event{Date: d, Type: report.EventDeposit, Amount: a})
	}
	return events, nil
}

func printInterestSummary(w io.Writer, p report.Plan, s report.InterestSummary, taxRate float64, currency string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("After %d years", p.Years)))
	fmt.Fprintf(w, "  %-26s %16s  discounted %s\n", "accumulated value", styledMoney(s.Final, currency), styledMoney(s.Discounted, currency))
	if !p.StartAmount.IsZero() {
		increase, _ := s.Final.Div(p.StartAmount).Sub(decimal.NewFromInt(1)).Float64()
		fmt.Fprintf(w, "  %-26s %15.2f%%\n", "increase since start", increase*100)
	}
	fmt.Fprintf(w, "  %-26s %16s\n", "invested", styledMoney(s.Invested, currency))
	fmt.Fprintf(w, "  %-26s %16s\n", "interest received", styledMoney(s.Interest, currency))
	fmt.Fprintf(w, "  %-26s %16s\n", fmt.Sprintf("interest after %.0f%% tax", taxRate*100), styledMoney(s.AfterTax(taxRate), currency))
	if !s.Invested.IsZero() {
		ratio, _ := s.Interest.Div(s.Invested).Float64()
		fmt.Fprintf(w, "  %-26s %15.2f%%\n", "interest-investment ratio", ratio*100)
	}
}

func printSteps(w io.Writer, steps []report.Step, currency string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-10s %-16s %14s %16s %16s", "date", "type", "change", "balance", "discounted")))
	for _, s := range steps {
		fmt.Fprintf(w, "%-10s %-16s %14s %16s %16s\n",
			s.Date.Format("2006-01-02"), s.Type,
			money(s.Change, currency), money(s.Balance, currency), money(s.Discounted, currency))
	}
}
