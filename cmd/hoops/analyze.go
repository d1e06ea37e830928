package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
)

func newAnalyzeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Compare the latest snapshots, rate teams and write reports for every division.",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			analyzer, err := c.app.Analyzer()
			if err != nil {
				return err
			}
			outcomes, runErr := analyzer.Run(cmd.Context())

			t := report.Table{Header: []string{"division", "date", "previous", "added", "removed", "changed", "unchanged", "rated", "low_confidence"}}
			for _, o := range outcomes {
				if o.Err != nil {
					continue
				}
				counts := o.Comparison.Summary.Counts
				modified := o.Comparison.Summary.Changed() - counts[compare.Added] - counts[compare.Removed]
				t.Rows = append(t.Rows, []string{
					o.Division,
					o.Date,
					o.PreviousDate,
					strconv.Itoa(counts[compare.Added]),
					strconv.Itoa(counts[compare.Removed]),
					strconv.Itoa(modified),
					strconv.Itoa(counts[compare.Unchanged]),
					strconv.Itoa(len(o.Ratings.Ratings)),
					yesNo(o.Ratings.LowConfidence),
				})
			}
			if err := t.Render(cmd.OutOrStdout(), report.FormatTable); err != nil {
				return err
			}
			return runErr
		}),
	}
}
