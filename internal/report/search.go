package report

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
)

const (
	suggestionThreshold = 0.8
	maxSuggestions      = 3
)

// SearchResult holds substring matches, or close spellings when nothing matched.
type SearchResult struct {
	Query       string
	Matches     []ratings.TeamRating
	Suggestions []string
}

// SearchTeams finds rated teams whose name contains query, ignoring case. Matches keep
// rating order.
func SearchTeams(list []ratings.TeamRating, query string) SearchResult {
	res := SearchResult{Query: query}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return res
	}
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.TeamName), q) {
			res.Matches = append(res.Matches, r)
		}
	}
	if len(res.Matches) > 0 {
		return res
	}

	type candidate struct {
		name  string
		score float64
	}
	var candidates []candidate
	for _, r := range list {
		sim := matchr.JaroWinkler(q, strings.ToLower(r.TeamName), false)
		if sim > suggestionThreshold {
			candidates = append(candidates, candidate{name: r.TeamName, score: sim})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		res.Suggestions = append(res.Suggestions, candidates[i].name)
	}
	return res
}
