package compare

import "github.com/preston-bernstein/hoops-analytics/internal/domain/games"

// ChangeType classifies how a game differs between two snapshots.
type ChangeType string

const (
	Added        ChangeType = "ADDED"
	Removed      ChangeType = "REMOVED"
	DateChanged  ChangeType = "DATE_CHANGED"
	TimeChanged  ChangeType = "TIME_CHANGED"
	VenueChanged ChangeType = "VENUE_CHANGED"
	ScoreChanged ChangeType = "SCORE_CHANGED"
	Unchanged    ChangeType = "UNCHANGED"
)

// ChangeTypes lists every change type in report order.
var ChangeTypes = []ChangeType{Added, Removed, ScoreChanged, DateChanged, TimeChanged, VenueChanged, Unchanged}

// Field is a comparable game attribute.
type Field string

const (
	FieldScore Field = "score"
	FieldDate  Field = "date"
	FieldTime  Field = "time"
	FieldVenue Field = "venue"
)

// DefaultPriority decides which change wins when several fields differ.
var DefaultPriority = []Field{FieldScore, FieldDate, FieldTime, FieldVenue}

var fieldChange = map[Field]ChangeType{
	FieldScore: ScoreChanged,
	FieldDate:  DateChanged,
	FieldTime:  TimeChanged,
	FieldVenue: VenueChanged,
}

// ChangeRecord is the outcome for one game_id. OldValue and NewValue are only set for
// modified games, and stay nil for a side that had no value.
type ChangeRecord struct {
	GameID     string     `json:"game_id"`
	ChangeType ChangeType `json:"change_type"`
	OldValue   *string    `json:"old_value"`
	NewValue   *string    `json:"new_value"`
	HomeTeam   string     `json:"home_team"`
	AwayTeam   string     `json:"away_team"`
	Date       string     `json:"date"`
	Division   string     `json:"division"`
	// Game is the newer side, or the old one for REMOVED.
	Game games.Game `json:"game"`
}

// Changed reports whether the record is anything other than UNCHANGED.
func (r ChangeRecord) Changed() bool {
	return r.ChangeType != Unchanged
}

// Summary counts a comparison pass.
type Summary struct {
	OldGames int                `json:"old_games"`
	NewGames int                `json:"new_games"`
	Counts   map[ChangeType]int `json:"counts"`
	// Duplicates counts records dropped because their game_id was already seen.
	Duplicates   int      `json:"duplicates"`
	DuplicateIDs []string `json:"duplicate_ids,omitempty"`
}

// Changed is the number of games that are not UNCHANGED.
func (s Summary) Changed() int {
	total := 0
	for t, n := range s.Counts {
		if t != Unchanged {
			total += n
		}
	}
	return total
}

// Total is the number of change records.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Result is the ordered change list plus its summary.
type Result struct {
	Changes []ChangeRecord `json:"changes"`
	Summary Summary        `json:"summary"`
}
