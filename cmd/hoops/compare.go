package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/logging"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
)

func newCompareCmd(c *cli) *cobra.Command {
	var team, division, format string
	cmd := &cobra.Command{
		Use:   "compare OLD.json NEW.json",
		Short: "Compare two snapshot files and print the change log.",
		Args:  cobra.ExactArgs(2),
		RunE: c.withApp(func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			prev, err := c.loadFile(cmd, args[0], division)
			if err != nil {
				return err
			}
			cur, err := c.loadFile(cmd, args[1], division)
			if err != nil {
				return err
			}

			res := c.app.Comparator().Compare(prev.Games, cur.Games)
			changes := res.Changes
			t := report.ChangeLog(changes)
			if team != "" {
				changes = report.TeamChanges(res.Changes, team)
				t = report.TeamSchedule(res.Changes, team)
			}
			out := cmd.OutOrStdout()
			if err := t.Render(out, f); err != nil {
				return err
			}
			if f == report.FormatTable {
				fmt.Fprintln(out, summaryLine(changes))
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&team, "team", "", "only show games involving this team")
	cmd.Flags().StringVar(&division, "division", "", "division for records that do not name one")
	cmd.Flags().StringVar(&format, "format", string(report.FormatTable), "output format (table, csv, markdown)")
	return cmd
}

// loadFile reads a snapshot file, logging the records that fail validation.
func (c *cli) loadFile(cmd *cobra.Command, path, division string) (games.Snapshot, error) {
	snap, warnings, err := c.app.Store().LoadFile(path, division)
	if err != nil {
		return games.Snapshot{}, err
	}
	logger := logging.FromContext(cmd.Context(), c.app.Logger())
	for _, w := range warnings {
		logging.Warn(logger, "game record rejected", logging.FieldPath, path, "error", w)
	}
	return snap, nil
}

func summaryLine(changes []compare.ChangeRecord) string {
	counts := make(map[compare.ChangeType]int, len(compare.ChangeTypes))
	for _, ch := range changes {
		counts[ch.ChangeType]++
	}
	parts := make([]string, 0, len(compare.ChangeTypes))
	for _, t := range compare.ChangeTypes {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	if len(parts) == 0 {
		return "no games"
	}
	return strings.Join(parts, " ")
}
