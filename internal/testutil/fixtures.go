package testutil

import (
	"testing"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// RawGame builds a scraped record. Empty scores are left absent.
func RawGame(home, away, date, homeScore, awayScore string) games.RawGame {
	raw := games.RawGame{
		HomeTeam: games.Raw(home),
		AwayTeam: games.Raw(away),
		Date:     games.Raw(date),
		Time:     games.Raw("9:00 AM"),
		Venue:    games.Raw("Main Gym"),
	}
	if homeScore != "" {
		raw.HomeScore = games.Raw(homeScore)
	}
	if awayScore != "" {
		raw.AwayScore = games.Raw(awayScore)
	}
	return raw
}

// ParseGames validates raws for division and fails the test on any parse problem.
func ParseGames(t testing.TB, division string, raws ...games.RawGame) []games.Game {
	t.Helper()
	list, problems := games.ParseBatch(raws, division)
	if len(problems) != 0 {
		t.Fatalf("unexpected parse problems: %v", problems)
	}
	return list
}
