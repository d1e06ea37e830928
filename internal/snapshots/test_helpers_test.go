package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

const testDivision = "6th Girls"

func sampleGames(date string) []games.Game {
	return []games.Game{
		{
			ID:        games.GameID(testDivision, "Lakeside", "Shorewood", date),
			HomeTeam:  "Lakeside",
			AwayTeam:  "Shorewood",
			HomeScore: games.IntPtr(44),
			AwayScore: games.IntPtr(40),
			Date:      date,
			Time:      "9:00 AM",
			Venue:     "Main Gym",
			Court:     "Court 2",
			Division:  testDivision,
		},
		{
			ID:       games.GameID(testDivision, "Eastside", "Westview", date),
			HomeTeam: "Eastside",
			AwayTeam: "Westview",
			Date:     date,
			Division: testDivision,
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, date string, list []games.Game) bool {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	written, err := w.WriteSnapshot(testDivision, date, list)
	if err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
	return written
}

func writeSimpleSnapshot(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeSnapshot(t, w, date, sampleGames(date))
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil when asserting snapshot for %s", date)
	}
	if _, err := os.Stat(SnapshotPath(w.BasePath(), testDivision, date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
