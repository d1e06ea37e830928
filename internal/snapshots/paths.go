package snapshots

import (
	"fmt"
	"path/filepath"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

const manifestFile = "manifest.json"

// DivisionDir is the directory holding every snapshot of a division.
func DivisionDir(basePath, division string) string {
	return filepath.Join(basePath, games.DivisionSlug(division))
}

// SnapshotPath builds the path to a division snapshot for a given date.
func SnapshotPath(basePath, division, date string) string {
	return filepath.Join(DivisionDir(basePath, division), fmt.Sprintf("%s.json", date))
}
