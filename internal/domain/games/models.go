package games

import (
	"fmt"
	"strconv"
)

// Game is the normalized, validated record of one scheduled or played game.
// Values are immutable once built by ParseGame.
type Game struct {
	ID        string `json:"game_id"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Court     string `json:"court,omitempty"`
	Division  string `json:"division"`
	GameType  string `json:"game_type,omitempty"`
}

// Completed reports whether both scores are present.
func (g Game) Completed() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Margin returns home minus away points; ok is false for games not yet played.
func (g Game) Margin() (margin int, ok bool) {
	if !g.Completed() {
		return 0, false
	}
	return *g.HomeScore - *g.AwayScore, true
}

// ScoreLabel renders the score as "home-away", leaving a missing side blank.
// ok is false when neither score is present.
func (g Game) ScoreLabel() (label string, ok bool) {
	if g.HomeScore == nil && g.AwayScore == nil {
		return "", false
	}
	return fmt.Sprintf("%s-%s", scoreText(g.HomeScore), scoreText(g.AwayScore)), true
}

// VenueLabel combines venue and court ("Gym (Court 2)").
func (g Game) VenueLabel() string {
	switch {
	case g.Court == "":
		return g.Venue
	case g.Venue == "":
		return "(" + g.Court + ")"
	default:
		return g.Venue + " (" + g.Court + ")"
	}
}

// Involves reports whether the team (any spelling that normalizes the same) plays in the game.
func (g Game) Involves(team string) bool {
	key := NormalizeTeam(team)
	if key == "" {
		return false
	}
	return NormalizeTeam(g.HomeTeam) == key || NormalizeTeam(g.AwayTeam) == key
}

// Snapshot is the full list of games captured for a division at one point in time.
type Snapshot struct {
	Division string `json:"division"`
	Date     string `json:"date"`
	Source   string `json:"-"`
	Games    []Game `json:"games"`
}

// NewSnapshot builds a Snapshot payload.
func NewSnapshot(division, date string, games []Game) Snapshot {
	return Snapshot{
		Division: division,
		Date:     date,
		Games:    games,
	}
}

// Completed returns the completed games in input order.
func Completed(games []Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}

// IntPtr is a small helper for building scores.
func IntPtr(v int) *int {
	return &v
}

func scoreText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
