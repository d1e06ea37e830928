package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
)

const (
	ChangesFile  = "changes.csv"
	RatingsFile  = "team_ratings.csv"
	SummaryFile  = "summary.json"
	teamFileTmpl = "%s_games_comparison.csv"
)

// Bundle is everything produced for one division in one analysis run.
type Bundle struct {
	Division     string
	Date         string
	PreviousDate string
	Comparison   compare.Result
	Ratings      ratings.Result
	// Teams lists the teams that get their own schedule file.
	Teams    []string
	Warnings []error
}

// Summary is the JSON digest written next to the CSV files.
type Summary struct {
	Division      string           `json:"division"`
	Date          string           `json:"date"`
	PreviousDate  string           `json:"previous_date,omitempty"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Comparison    compare.Summary  `json:"comparison"`
	Fit           ratings.FitStats `json:"fit"`
	RatedTeams    int              `json:"rated_teams"`
	LowConfidence bool             `json:"low_confidence"`
	Teams         []TeamStats      `json:"teams,omitempty"`
	Warnings      []string         `json:"warnings"`
}

// Files lists the paths written for a bundle.
type Files struct {
	Dir     string
	Changes string
	Ratings string
	Summary string
	Teams   map[string]string
}

// Writer persists reports under {root}/{division_slug}/.
type Writer struct {
	root string
	now  func() time.Time
}

// NewWriter constructs a report writer rooted at root.
func NewWriter(root string) *Writer {
	return &Writer{root: root, now: time.Now}
}

// Root exposes the report directory.
func (w *Writer) Root() string {
	if w == nil {
		return ""
	}
	return w.root
}

// Write renders and stores every report for the bundle.
func (w *Writer) Write(b Bundle) (Files, error) {
	if w == nil {
		return Files{}, fmt.Errorf("report writer not configured")
	}
	if b.Division == "" {
		return Files{}, fmt.Errorf("division required")
	}
	dir := filepath.Join(w.root, games.DivisionSlug(b.Division))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, err
	}
	files := Files{
		Dir:     dir,
		Changes: filepath.Join(dir, ChangesFile),
		Ratings: filepath.Join(dir, RatingsFile),
		Summary: filepath.Join(dir, SummaryFile),
		Teams:   make(map[string]string, len(b.Teams)),
	}

	if err := writeTable(files.Changes, ChangeLog(b.Comparison.Changes)); err != nil {
		return files, err
	}
	if err := writeTable(files.Ratings, RatingsTable(b.Ratings.Ratings)); err != nil {
		return files, err
	}

	summary := Summary{
		Division:      b.Division,
		Date:          b.Date,
		PreviousDate:  b.PreviousDate,
		GeneratedAt:   w.now().UTC(),
		Comparison:    b.Comparison.Summary,
		Fit:           b.Ratings.Stats,
		RatedTeams:    len(b.Ratings.Ratings),
		LowConfidence: b.Ratings.LowConfidence,
		Warnings:      []string{},
	}
	for _, team := range b.Teams {
		path := filepath.Join(dir, fmt.Sprintf(teamFileTmpl, games.NormalizeTeam(team)))
		if err := writeTable(path, TeamSchedule(b.Comparison.Changes, team)); err != nil {
			return files, err
		}
		files.Teams[team] = path
		summary.Teams = append(summary.Teams, TeamSummary(b.Comparison.Changes, team))
	}
	for _, warn := range append(append([]error(nil), b.Warnings...), b.Ratings.Warnings...) {
		summary.Warnings = append(summary.Warnings, warn.Error())
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return files, err
	}
	if err := writeFileAtomic(files.Summary, data); err != nil {
		return files, err
	}
	return files, nil
}

func writeTable(path string, t Table) error {
	var buf bytes.Buffer
	if err := t.Render(&buf, FormatCSV); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
