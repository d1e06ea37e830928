package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	today := time.Now().UTC().Format("2006-01-02")
	if !writeSnapshot(t, w, today, sampleGames(today)) {
		t.Fatalf("expected first write to report a change")
	}
	requireSnapshotExists(t, w, today)

	if _, err := os.Stat(filepath.Join(dir, "6th_girls", today+".json")); err != nil {
		t.Fatalf("expected division directory layout, got %v", err)
	}

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	meta, ok := m.Divisions["6th_girls"]
	if !ok || meta.Name != testDivision {
		t.Fatalf("expected division entry, got %+v", m.Divisions)
	}
	assertDatesEqual(t, meta.Dates, []string{today})
	if meta.LastRefreshed.IsZero() || m.RetentionDays != 10 {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestWriterSkipsIdenticalSnapshot(t *testing.T) {
	w := NewWriter(t.TempDir(), 0)
	date := "2024-01-06"
	writeSimpleSnapshot(t, w, date)
	path := SnapshotPath(w.BasePath(), testDivision, date)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	if writeSnapshot(t, w, date, sampleGames(date)) {
		t.Fatalf("expected identical snapshot to be skipped")
	}
	after, _ := os.Stat(path)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatalf("expected file to be untouched")
	}

	changed := sampleGames(date)
	changed[1].Time = "11:00 AM"
	if !writeSnapshot(t, w, date, changed) {
		t.Fatalf("expected a changed snapshot to be rewritten")
	}
}

func TestWriterPrunesOldSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 1)

	oldDate := time.Now().UTC().AddDate(0, 0, -5).Format("2006-01-02")
	newDate := time.Now().UTC().Format("2006-01-02")
	for _, d := range []string{oldDate, newDate} {
		writeSimpleSnapshot(t, w, d)
	}

	if _, err := os.Stat(SnapshotPath(dir, testDivision, oldDate)); err == nil {
		t.Fatalf("expected old snapshot to be pruned")
	}
	requireSnapshotExists(t, w, newDate)
}

func TestWriterZeroRetentionKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 0)
	w.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	writeSimpleSnapshot(t, w, "2024-01-06")
	writeSimpleSnapshot(t, w, "2024-01-13")

	m, _ := ReadManifest(dir)
	assertDatesEqual(t, m.Divisions["6th_girls"].Dates, []string{"2024-01-06", "2024-01-13"})
}

func TestWriterEmptySnapshotIsArray(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 0)
	writeSnapshot(t, w, "2024-01-06", nil)

	data, err := os.ReadFile(SnapshotPath(dir, testDivision, "2024-01-06"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestWriterHandlesNilAndBadInput(t *testing.T) {
	var w *Writer
	if _, err := w.WriteSnapshot(testDivision, "2024-01-01", nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}

	w = NewWriter(t.TempDir(), 1)
	if _, err := w.WriteSnapshot(testDivision, "", nil); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if _, err := w.WriteSnapshot(testDivision, "01/06/2024", nil); err == nil {
		t.Fatalf("expected error for non-canonical date")
	}
	if _, err := w.WriteSnapshot(" ", "2024-01-06", []games.Game{}); err == nil {
		t.Fatalf("expected error for blank division")
	}
}

func TestNewWriterClampsNegativeRetention(t *testing.T) {
	w := NewWriter(t.TempDir(), -3)
	if w.retentionDays != 0 {
		t.Fatalf("expected negative retention to disable pruning, got %d", w.retentionDays)
	}
	if (*Writer)(nil).BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
}

func TestListDatesIgnoresStrayFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2024-01-13.json", "2024-01-06.json", "notes.json", "2024-01-07.json.tmp", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	dates, err := listDates(dir)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	assertDatesEqual(t, dates, []string{"2024-01-06", "2024-01-13"})

	missing, err := listDates(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("expected empty list for missing dir, got %v %v", missing, err)
	}
}
