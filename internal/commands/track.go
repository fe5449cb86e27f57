package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wealth-dev/wealth/internal/importer"
	"github.com/wealth-dev/wealth/internal/track"
)

func newTrackCommand(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Evaluate the expense tracking file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if file == "" {
				file = filepath.Join(e.csvDir, importer.TrackFile)
			}

			r, err := track.Load(file)
			if err != nil {
				return err
			}
			e.logger.Debug("loaded tracking file", "file", file, "rows", len(r.Expenses))
			printTrack(cmd.OutOrStdout(), r, e.cfg.Currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "tracking file (default: track.csv in the CSV directory)")

	return cmd
}

func printTrack(w io.Writer, r *track.Report, currency string) {
	fmt.Fprintln(w, headerStyle.Render("Last balances per month"))
	for _, me := range r.MonthEnds {
		fmt.Fprintf(w, "  %s", me.Month.Format("2006-01"))
		for _, b := range track.Buckets {
			v, ok := me.Balances[b]
			if !ok {
				fmt.Fprintf(w, "  %s %14s", b, "")
				continue
			}
			fmt.Fprintf(w, "  %s %14s", b, styledMoney(v, currency))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, headerStyle.Render("Average monthly last balances"))
	for _, b := range track.Buckets {
		if v, ok := r.AvgMonthly[b]; ok {
			fmt.Fprintf(w, "  %-10s %14s\n", b, styledMoney(v, currency))
		}
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Sums per type over %d days", r.Days)))
	for _, t := range r.Types {
		fmt.Fprintf(w, "  %-16s %14s  avg monthly %s\n", t.Type, styledMoney(t.Total, currency), styledMoney(t.AvgMonthly, currency))
	}
}
