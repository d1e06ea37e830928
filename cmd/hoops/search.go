package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/report"
)

func newSearchCmd(c *cli) *cobra.Command {
	var division string
	cmd := &cobra.Command{
		Use:   "search QUERY --division NAME",
		Short: "Look up a team's rating in a division's latest snapshot.",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(division) == "" {
				return errors.New("--division is required")
			}
			store := c.app.Store()
			date, err := store.Latest(division)
			if err != nil {
				return err
			}
			snap, _, err := store.Load(division, date)
			if err != nil {
				return err
			}
			rated := c.app.Engine().Rate(snap.Games).Ratings
			res := report.SearchTeams(rated, strings.Join(args, " "))

			out := cmd.OutOrStdout()
			if len(res.Matches) == 0 {
				if len(res.Suggestions) == 0 {
					fmt.Fprintf(out, "no team matches %q\n", res.Query)
					return nil
				}
				fmt.Fprintf(out, "no team matches %q, did you mean: %s\n", res.Query, strings.Join(res.Suggestions, ", "))
				return nil
			}

			// Keep each team's rank in the full table.
			full := report.RatingsTable(rated)
			t := report.Table{Header: full.Header}
			for _, m := range res.Matches {
				for i, r := range rated {
					if r.TeamKey == m.TeamKey {
						t.Rows = append(t.Rows, full.Rows[i])
						break
					}
				}
			}
			return t.Render(out, report.FormatTable)
		}),
	}
	cmd.Flags().StringVar(&division, "division", "", "division to search")
	return cmd
}
