package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
)

func newRatingsCmd(c *cli) *cobra.Command {
	var division, format string
	cmd := &cobra.Command{
		Use:   "ratings FILE.json",
		Short: "Rate the teams of a snapshot file from its completed games.",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			snap, err := c.loadFile(cmd, args[0], division)
			if err != nil {
				return err
			}
			res := c.app.Engine().Rate(snap.Games)
			out := cmd.OutOrStdout()
			if err := report.RatingsTable(res.Ratings).Render(out, f); err != nil {
				return err
			}
			if f == report.FormatTable {
				fmt.Fprintln(out, fitLine(res))
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&division, "division", "", "division for records that do not name one")
	cmd.Flags().StringVar(&format, "format", string(report.FormatTable), "output format (table, csv, markdown)")
	return cmd
}

func fitLine(res ratings.Result) string {
	s := res.Stats
	line := fmt.Sprintf("games=%d teams=%d home_advantage=%.2f r2=%.3f rmse=%.2f iterations=%d",
		s.Games, s.Teams, s.HomeAdvantage, s.RSquared, s.RMSE, s.Iterations)
	if res.LowConfidence {
		line += " (low confidence)"
	}
	return line
}
