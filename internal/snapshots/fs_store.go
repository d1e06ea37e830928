package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/timeutil"
)

// ErrNoSnapshot is returned when a division has no snapshot matching the lookup.
var ErrNoSnapshot = errors.New("no snapshot")

// Store defines how snapshots are located and loaded.
type Store interface {
	Load(division, date string) (games.Snapshot, []error, error)
	Dates(division string) ([]string, error)
	Latest(division string) (string, error)
	Previous(division, date string) (string, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Load reads the snapshot of a division for date (YYYY-MM-DD). Records are re-parsed, so
// the returned warnings carry any record that no longer validates.
func (s *FSStore) Load(division, date string) (games.Snapshot, []error, error) {
	if s == nil {
		return games.Snapshot{}, nil, errors.New("snapshot store not configured")
	}
	if date == "" {
		return games.Snapshot{}, nil, errors.New("snapshot date required")
	}
	path := SnapshotPath(s.basePath, division, date)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return games.Snapshot{}, nil, fmt.Errorf("%w for %s on %s", ErrNoSnapshot, division, date)
	}
	snap, warnings, err := s.LoadFile(path, division)
	if err != nil {
		return games.Snapshot{}, nil, err
	}
	snap.Date = date
	return snap, warnings, nil
}

// LoadFile reads an arbitrary snapshot file. Each record is decoded separately, so a
// malformed record becomes a warning. The capture date comes from the file name when it
// is a date.
func (s *FSStore) LoadFile(path, division string) (games.Snapshot, []error, error) {
	var records []json.RawMessage
	if err := decodeFile(path, &records); err != nil {
		return games.Snapshot{}, nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	list, warnings := games.ParseRecords(records, division)

	snap := games.NewSnapshot(division, "", list)
	snap.Source = path
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, err := timeutil.ParseDate(base); err == nil {
		snap.Date = base
	}
	return snap, warnings, nil
}

// Dates lists the stored snapshot dates of a division, oldest first.
func (s *FSStore) Dates(division string) ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	return listDates(DivisionDir(s.basePath, division))
}

// Latest returns the most recent snapshot date of a division.
func (s *FSStore) Latest(division string) (string, error) {
	dates, err := s.Dates(division)
	if err != nil {
		return "", err
	}
	if len(dates) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoSnapshot, division)
	}
	return dates[len(dates)-1], nil
}

// Previous returns the newest snapshot date strictly before date.
func (s *FSStore) Previous(division, date string) (string, error) {
	dates, err := s.Dates(division)
	if err != nil {
		return "", err
	}
	for i := len(dates) - 1; i >= 0; i-- {
		if dates[i] < date {
			return dates[i], nil
		}
	}
	return "", fmt.Errorf("%w for %s before %s", ErrNoSnapshot, division, date)
}

// Has reports whether a snapshot exists for the division and date.
func (s *FSStore) Has(division, date string) bool {
	if s == nil || s.basePath == "" || date == "" {
		return false
	}
	_, err := os.Stat(SnapshotPath(s.basePath, division, date))
	return err == nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
