package testutil

import (
	"testing"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t testing.TB, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot stores list as the division's snapshot for date.
func WriteSnapshot(t testing.TB, w *snapshots.Writer, division, date string, list []games.Game) {
	t.Helper()
	if _, err := w.WriteSnapshot(division, date, list); err != nil {
		t.Fatalf("failed to write snapshot %s/%s: %v", division, date, err)
	}
}
