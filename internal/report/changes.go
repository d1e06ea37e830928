package report

import (
	"strconv"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// ChangeLogHeader is the fixed column order of the change log.
var ChangeLogHeader = []string{
	"game_id", "change_type", "division", "date", "time", "venue",
	"home_team", "away_team", "home_score", "away_score", "old_value", "new_value",
}

// TeamScheduleHeader is the per-team dashboard view.
var TeamScheduleHeader = []string{
	"Date", "Time", "Venue", "Home Team", "Away Team", "Home Score", "Away Score", "CHANGED",
}

// ChangeLog renders one row per change record, in comparator order.
func ChangeLog(changes []compare.ChangeRecord) Table {
	t := Table{Header: ChangeLogHeader, Rows: make([][]string, 0, len(changes))}
	for _, c := range changes {
		g := c.Game
		t.Rows = append(t.Rows, []string{
			c.GameID,
			string(c.ChangeType),
			c.Division,
			c.Date,
			g.Time,
			g.VenueLabel(),
			c.HomeTeam,
			c.AwayTeam,
			score(g.HomeScore),
			score(g.AwayScore),
			optional(c.OldValue),
			optional(c.NewValue),
		})
	}
	return t
}

// TeamChanges keeps the records whose game involves team, matched on the team key.
func TeamChanges(changes []compare.ChangeRecord, team string) []compare.ChangeRecord {
	out := make([]compare.ChangeRecord, 0)
	for _, c := range changes {
		if c.Game.Involves(team) {
			out = append(out, c)
		}
	}
	return out
}

// TeamSchedule is the schedule view of one team with a YES/NO changed marker.
func TeamSchedule(changes []compare.ChangeRecord, team string) Table {
	rows := TeamChanges(changes, team)
	t := Table{Header: TeamScheduleHeader, Rows: make([][]string, 0, len(rows))}
	for _, c := range rows {
		g := c.Game
		changed := "NO"
		if c.Changed() {
			changed = "YES"
		}
		t.Rows = append(t.Rows, []string{
			g.Date, g.Time, g.VenueLabel(), g.HomeTeam, g.AwayTeam,
			score(g.HomeScore), score(g.AwayScore), changed,
		})
	}
	return t
}

// TeamStats summarizes one team's games in a comparison.
type TeamStats struct {
	Team       string `json:"team"`
	Games      int    `json:"games"`
	Changed    int    `json:"changed"`
	WithScores int    `json:"with_scores"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
}

// TeamSummary counts the team's games. Removed games count as changed but not toward
// the record.
func TeamSummary(changes []compare.ChangeRecord, team string) TeamStats {
	stats := TeamStats{Team: team}
	key := games.NormalizeTeam(team)
	for _, c := range TeamChanges(changes, team) {
		stats.Games++
		if c.Changed() {
			stats.Changed++
		}
		if c.ChangeType == compare.Removed {
			continue
		}
		margin, ok := c.Game.Margin()
		if !ok {
			continue
		}
		stats.WithScores++
		if games.NormalizeTeam(c.Game.AwayTeam) == key {
			margin = -margin
		}
		switch {
		case margin > 0:
			stats.Wins++
		case margin < 0:
			stats.Losses++
		}
	}
	return stats
}

func score(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
