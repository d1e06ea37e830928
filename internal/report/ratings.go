package report

import (
	"strconv"

	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
)

// RatingsHeader is the fixed column order of the ratings table.
var RatingsHeader = []string{"rank", "team", "rating", "games_played", "reference"}

// RatingsTable renders ratings in engine order with 1-based ranks.
func RatingsTable(list []ratings.TeamRating) Table {
	t := Table{Header: RatingsHeader, Rows: make([][]string, 0, len(list))}
	for i, r := range list {
		ref := ""
		if r.Reference != nil {
			ref = fixed(*r.Reference)
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			r.TeamName,
			fixed(r.Rating),
			strconv.Itoa(r.GamesPlayed),
			ref,
		})
	}
	return t
}

func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
