package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/timeutil"
)

// Writer persists division snapshots and the manifest, pruning by age.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath. A retention of 0 keeps every snapshot.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays < 0 {
		retentionDays = 0
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSnapshot stores the games of a division captured on date (YYYY-MM-DD) in scrape
// order. It reports false when an identical snapshot was already on disk.
func (w *Writer) WriteSnapshot(division, date string, list []games.Game) (bool, error) {
	if w == nil {
		return false, fmt.Errorf("snapshot writer not configured")
	}
	if strings.TrimSpace(division) == "" {
		return false, fmt.Errorf("division required")
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return false, fmt.Errorf("snapshot date %q: %w", date, err)
	}
	if list == nil {
		list = []games.Game{}
	}

	target := SnapshotPath(w.basePath, division, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return false, err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, w.updateManifest(division, date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		return false, err
	}
	return true, w.updateManifest(division, date)
}

func (w *Writer) updateManifest(division, date string) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)

	dates, err := listDates(DivisionDir(w.basePath, division))
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned := w.pruneOldSnapshots(division, dates)

	m.RetentionDays = w.retentionDays
	m.Divisions[games.DivisionSlug(division)] = DivisionMeta{
		Name:          division,
		Dates:         pruned,
		LastRefreshed: w.now().UTC(),
	}
	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

// listDates returns the sorted snapshot dates found in dir. Files whose name is not a
// date are ignored.
func listDates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := strings.TrimSuffix(name, ".json")
		if _, err := timeutil.ParseDate(base); err != nil {
			continue
		}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(division string, dates []string) []string {
	if w.retentionDays == 0 {
		sort.Strings(dates)
		return dates
	}
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := []string{}
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(SnapshotPath(w.basePath, division, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
