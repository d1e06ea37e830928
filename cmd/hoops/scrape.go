package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/report"
)

func newScrapeCmd(c *cli) *cobra.Command {
	var htmlPath, date string
	cmd := &cobra.Command{
		Use:   "scrape [--html FILE] [--date YYYY-MM-DD]",
		Short: "Fetch every configured division and store today's snapshot.",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			results, runErr := c.app.Syncer(htmlPath).Run(cmd.Context(), date)

			t := report.Table{Header: []string{"division", "date", "fetched", "kept", "dropped", "warnings", "written"}}
			for _, r := range results {
				t.Rows = append(t.Rows, []string{
					r.Division,
					r.Date,
					strconv.Itoa(r.Fetched),
					strconv.Itoa(r.Kept),
					strconv.Itoa(r.Dropped),
					strconv.Itoa(r.Warnings),
					yesNo(r.Written),
				})
			}
			if err := t.Render(cmd.OutOrStdout(), report.FormatTable); err != nil {
				return err
			}
			return runErr
		}),
	}
	cmd.Flags().StringVar(&htmlPath, "html", "", "parse a saved schedule page instead of fetching")
	cmd.Flags().StringVar(&date, "date", "", "snapshot date (default today, UTC)")
	return cmd
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
