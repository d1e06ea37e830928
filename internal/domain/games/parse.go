package games

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/hoops-analytics/internal/timeutil"
)

// scorePlaceholders are what schedule pages print in the score slot before tip-off.
var scorePlaceholders = map[string]struct{}{
	"(a)": {},
	"(h)": {},
	"-":   {},
	"--":  {},
	"tbd": {},
}

// ParseGame validates one raw record. A non-nil error means the record must be dropped.
// Field warnings are returned for scores that could not be read; those scores are left nil
// and the game is kept as not yet played.
func ParseGame(raw RawGame, defaultDivision string) (Game, []*ParseError, error) {
	return parseAt(0, raw, defaultDivision)
}

// ParseBatch parses raws in order. Dropped records and field warnings are both reported
// as *ParseError values carrying the record index; one bad record never aborts the batch.
func ParseBatch(raws []RawGame, defaultDivision string) ([]Game, []error) {
	b := newBatch(len(raws))
	for i, raw := range raws {
		b.add(i, raw, defaultDivision)
	}
	return b.games, b.problems
}

// ParseRecords decodes each element of a JSON array on its own before parsing it. A record
// with the wrong shape is dropped with a *ParseError like any other invalid record, and the
// remaining records are still returned.
func ParseRecords(records []json.RawMessage, defaultDivision string) ([]Game, []error) {
	b := newBatch(len(records))
	for i, rec := range records {
		var raw RawGame
		if err := json.Unmarshal(rec, &raw); err != nil {
			b.problems = append(b.problems, &ParseError{Index: i, Field: "record", Reason: err.Error()})
			continue
		}
		b.add(i, raw, defaultDivision)
	}
	return b.games, b.problems
}

type batch struct {
	games    []Game
	problems []error
}

func newBatch(size int) *batch {
	return &batch{games: make([]Game, 0, size)}
}

func (b *batch) add(index int, raw RawGame, defaultDivision string) {
	game, warnings, err := parseAt(index, raw, defaultDivision)
	for _, w := range warnings {
		b.problems = append(b.problems, w)
	}
	if err != nil {
		b.problems = append(b.problems, err)
		return
	}
	b.games = append(b.games, game)
}

func parseAt(index int, raw RawGame, defaultDivision string) (Game, []*ParseError, error) {
	home := cleanText(raw.HomeTeam.Value)
	away := cleanText(raw.AwayTeam.Value)
	if home == "" {
		return Game{}, nil, &ParseError{Index: index, Field: "home_team", Reason: "team name is empty"}
	}
	if away == "" {
		return Game{}, nil, &ParseError{Index: index, Field: "away_team", Reason: "team name is empty"}
	}
	if NormalizeTeam(home) == NormalizeTeam(away) {
		return Game{}, nil, &ParseError{Index: index, Field: "away_team", Value: away, Reason: "team cannot play itself"}
	}

	date, err := timeutil.CanonicalDate(raw.Date.Value)
	if err != nil {
		return Game{}, nil, &ParseError{Index: index, Field: "date", Value: raw.Date.Value, Reason: err.Error()}
	}

	division := cleanText(raw.Division.Value)
	if division == "" {
		division = strings.TrimSpace(defaultDivision)
	}

	var warnings []*ParseError
	homeScore, homeErr := parseScore(index, "home_score", raw.HomeScore)
	if homeErr != nil {
		warnings = append(warnings, homeErr)
	}
	awayScore, awayErr := parseScore(index, "away_score", raw.AwayScore)
	if awayErr != nil {
		warnings = append(warnings, awayErr)
	}

	game := Game{
		ID:        GameID(division, home, away, date),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Date:      date,
		Time:      cleanText(raw.Time.Value),
		Venue:     cleanText(raw.Venue.Value),
		Court:     strings.Trim(cleanText(raw.Court.Value), "()"),
		Division:  division,
		GameType:  cleanText(raw.GameType.Value),
	}
	return game, warnings, nil
}

func parseScore(index int, field string, raw RawField) (*int, *ParseError) {
	value := strings.TrimSpace(raw.Value)
	if !raw.Present || value == "" {
		return nil, nil
	}
	if _, placeholder := scorePlaceholders[strings.ToLower(value)]; placeholder {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		// Some exports write whole-number floats ("52.0").
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil || f != float64(int(f)) {
			return nil, &ParseError{Index: index, Field: field, Value: value, Reason: "score is not a whole number"}
		}
		n = int(f)
	}
	if n < 0 {
		return nil, &ParseError{Index: index, Field: field, Value: value, Reason: fmt.Sprintf("score %d is negative", n)}
	}
	return &n, nil
}

func cleanText(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
