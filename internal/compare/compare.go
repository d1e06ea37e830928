package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// ErrInvalidPriority is wrapped by every error New returns.
var ErrInvalidPriority = errors.New("invalid field priority")

// Comparator diffs two snapshots of the same division.
type Comparator struct {
	priority []Field
}

// New builds a Comparator for the given field priority. An empty, unknown or repeated
// field is an ErrInvalidPriority.
func New(priority []string) (*Comparator, error) {
	if len(priority) == 0 {
		return nil, fmt.Errorf("%w: must list at least one field", ErrInvalidPriority)
	}
	seen := make(map[Field]struct{}, len(priority))
	fields := make([]Field, 0, len(priority))
	for _, raw := range priority {
		f := Field(strings.ToLower(strings.TrimSpace(raw)))
		if _, ok := fieldChange[f]; !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidPriority, raw)
		}
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("%w: field %q listed twice", ErrInvalidPriority, raw)
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return &Comparator{priority: fields}, nil
}

// Default returns a Comparator using DefaultPriority.
func Default() *Comparator {
	return &Comparator{priority: append([]Field(nil), DefaultPriority...)}
}

// Priority returns the configured field order.
func (c *Comparator) Priority() []Field {
	return append([]Field(nil), c.priority...)
}

// Compare produces exactly one record per game_id found in either snapshot, ordered
// ADDED (new order), REMOVED (old order), modified (new order), then UNCHANGED (new order).
func (c *Comparator) Compare(oldGames, newGames []games.Game) Result {
	oldIdx := index(oldGames)
	newIdx := index(newGames)

	summary := Summary{
		OldGames: len(oldIdx.order),
		NewGames: len(newIdx.order),
		Counts:   make(map[ChangeType]int, len(ChangeTypes)),
	}
	summary.DuplicateIDs = append(append([]string(nil), oldIdx.duplicates...), newIdx.duplicates...)
	summary.Duplicates = len(summary.DuplicateIDs)

	var added, removed, modified, unchanged []ChangeRecord
	for _, id := range newIdx.order {
		cur := newIdx.byID[id]
		prev, ok := oldIdx.byID[id]
		if !ok {
			added = append(added, record(Added, cur))
			continue
		}
		rec := c.diff(prev, cur)
		if rec.ChangeType == Unchanged {
			unchanged = append(unchanged, rec)
		} else {
			modified = append(modified, rec)
		}
	}
	for _, id := range oldIdx.order {
		if _, ok := newIdx.byID[id]; !ok {
			removed = append(removed, record(Removed, oldIdx.byID[id]))
		}
	}

	changes := make([]ChangeRecord, 0, len(added)+len(removed)+len(modified)+len(unchanged))
	for _, group := range [][]ChangeRecord{added, removed, modified, unchanged} {
		for _, rec := range group {
			summary.Counts[rec.ChangeType]++
			changes = append(changes, rec)
		}
	}
	return Result{Changes: changes, Summary: summary}
}

func (c *Comparator) diff(prev, cur games.Game) ChangeRecord {
	prev = alignTo(prev, cur)
	for _, f := range c.priority {
		oldVal, newVal, same := fieldValues(f, prev, cur)
		if same {
			continue
		}
		rec := record(fieldChange[f], cur)
		rec.OldValue = oldVal
		rec.NewValue = newVal
		return rec
	}
	return record(Unchanged, cur)
}

func fieldValues(f Field, prev, cur games.Game) (*string, *string, bool) {
	switch f {
	case FieldScore:
		same := sameScore(prev.HomeScore, cur.HomeScore) && sameScore(prev.AwayScore, cur.AwayScore)
		return scoreValue(prev), scoreValue(cur), same
	case FieldDate:
		return textValue(prev.Date), textValue(cur.Date), prev.Date == cur.Date
	case FieldTime:
		return textValue(prev.Time), textValue(cur.Time), normalize(prev.Time) == normalize(cur.Time)
	case FieldVenue:
		oldVenue, newVenue := prev.VenueLabel(), cur.VenueLabel()
		return textValue(oldVenue), textValue(newVenue), normalize(oldVenue) == normalize(newVenue)
	}
	return nil, nil, true
}

// alignTo returns prev with home and away swapped when cur lists the same teams the
// other way round. The game id ignores orientation, so scores must be read per team.
func alignTo(prev, cur games.Game) games.Game {
	if games.NormalizeTeam(prev.HomeTeam) == games.NormalizeTeam(cur.HomeTeam) {
		return prev
	}
	if games.NormalizeTeam(prev.HomeTeam) != games.NormalizeTeam(cur.AwayTeam) {
		return prev
	}
	prev.HomeTeam, prev.AwayTeam = prev.AwayTeam, prev.HomeTeam
	prev.HomeScore, prev.AwayScore = prev.AwayScore, prev.HomeScore
	return prev
}

func record(t ChangeType, g games.Game) ChangeRecord {
	return ChangeRecord{
		GameID:     g.ID,
		ChangeType: t,
		HomeTeam:   g.HomeTeam,
		AwayTeam:   g.AwayTeam,
		Date:       g.Date,
		Division:   g.Division,
		Game:       g,
	}
}

func sameScore(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func scoreValue(g games.Game) *string {
	label, ok := g.ScoreLabel()
	if !ok {
		return nil
	}
	return &label
}

func textValue(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// normalize folds case and whitespace so cosmetic edits never register as changes.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

type gameIndex struct {
	byID       map[string]games.Game
	order      []string
	duplicates []string
}

func index(list []games.Game) gameIndex {
	idx := gameIndex{byID: make(map[string]games.Game, len(list))}
	for _, g := range list {
		if _, seen := idx.byID[g.ID]; seen {
			idx.duplicates = append(idx.duplicates, g.ID)
			continue
		}
		idx.byID[g.ID] = g
		idx.order = append(idx.order, g.ID)
	}
	return idx
}
