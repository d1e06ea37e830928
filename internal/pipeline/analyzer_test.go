package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
	"github.com/preston-bernstein/hoops-analytics/internal/snapshots"
	"github.com/preston-bernstein/hoops-analytics/internal/testutil"
)

type analyzerEnv struct {
	dataDir   string
	reportDir string
	writer    *snapshots.Writer
	recorder  *metrics.Recorder
	analyzer  *Analyzer
}

func newAnalyzerEnv(t *testing.T, divisions []string, teamFilter string) analyzerEnv {
	t.Helper()
	env := analyzerEnv{
		reportDir: t.TempDir(),
		recorder:  metrics.NewRecorder(),
	}
	env.writer = testutil.NewTempWriter(t, 0)
	env.dataDir = env.writer.BasePath()
	engine, err := ratings.New(ratings.Config{Alpha: 0.1})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	a, err := NewAnalyzer(AnalyzerConfig{
		Store:      snapshots.NewFSStore(env.dataDir),
		Engine:     engine,
		Reports:    report.NewWriter(env.reportDir),
		Divisions:  divisions,
		TeamFilter: teamFilter,
		Metrics:    env.recorder,
	})
	if err != nil {
		t.Fatalf("analyzer: %v", err)
	}
	env.analyzer = a
	return env
}

func TestAnalyzerComparesLatestWithPrevious(t *testing.T) {
	env := newAnalyzerEnv(t, []string{sixth}, "Shorewood")

	day1 := parsed(t, sixth,
		rawGame("Lakeside", "Shorewood", "2024-01-13", "", ""),
		rawGame("Northgate", "Riverview", "2024-01-13", "40", "30"),
	)
	day2 := parsed(t, sixth,
		rawGame("Lakeside", "Shorewood", "2024-01-13", "44", "40"),
		rawGame("Northgate", "Riverview", "2024-01-13", "40", "30"),
		rawGame("Shorewood", "Northgate", "2024-01-20", "", ""),
	)
	testutil.WriteSnapshot(t, env.writer, sixth, "2024-01-13", day1)
	testutil.WriteSnapshot(t, env.writer, sixth, "2024-01-14", day2)

	outcomes, err := env.analyzer.Run(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := outcomes[0]
	if out.Date != "2024-01-14" || out.PreviousDate != "2024-01-13" {
		t.Fatalf("unexpected dates %s/%s", out.Date, out.PreviousDate)
	}
	counts := out.Comparison.Summary.Counts
	if counts[compare.Added] != 1 || counts[compare.ScoreChanged] != 1 || counts[compare.Unchanged] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if got := out.Comparison.Changes[0].ChangeType; got != compare.Added {
		t.Fatalf("expected ADDED first, got %s", got)
	}
	if len(out.Ratings.Ratings) != 4 {
		t.Fatalf("expected 4 rated teams, got %d", len(out.Ratings.Ratings))
	}

	for _, path := range []string{out.Files.Changes, out.Files.Ratings, out.Files.Summary} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected report %s: %v", path, err)
		}
	}
	teamFile := out.Files.Teams["Shorewood"]
	if filepath.Base(teamFile) != "shorewood_games_comparison.csv" {
		t.Fatalf("unexpected team file %q", teamFile)
	}

	data, err := os.ReadFile(out.Files.Summary)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary report.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.PreviousDate != "2024-01-13" || summary.RatedTeams != 4 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	snap := env.recorder.Division(sixth)
	if snap.Changes[string(compare.ScoreChanged)] != 1 || snap.RatingRuns != 1 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestAnalyzerWithoutPreviousMarksEverythingAdded(t *testing.T) {
	env := newAnalyzerEnv(t, []string{sixth}, "")
	day := parsed(t, sixth,
		rawGame("Lakeside", "Shorewood", "2024-01-13", "44", "40"),
		rawGame("Northgate", "Riverview", "2024-01-13", "", ""),
	)
	testutil.WriteSnapshot(t, env.writer, sixth, "2024-01-13", day)

	outcomes, err := env.analyzer.Run(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := outcomes[0]
	if out.PreviousDate != "" {
		t.Fatalf("expected no previous date, got %s", out.PreviousDate)
	}
	if out.Comparison.Summary.Counts[compare.Added] != 2 || len(out.Comparison.Changes) != 2 {
		t.Fatalf("expected every game added, got %+v", out.Comparison.Summary)
	}
	if len(out.Files.Teams) != 0 {
		t.Fatalf("expected no team files without a filter")
	}
}

func TestAnalyzerSkipsFailedDivision(t *testing.T) {
	env := newAnalyzerEnv(t, []string{sixth, seventh}, "")
	day := parsed(t, seventh, rawGame("Lakeside", "Shorewood", "2024-01-13", "44", "40"))
	testutil.WriteSnapshot(t, env.writer, seventh, "2024-01-13", day)

	outcomes, err := env.analyzer.Run(context.Background())
	if !errors.Is(err, snapshots.ErrNoSnapshot) || !strings.Contains(err.Error(), sixth) {
		t.Fatalf("expected missing snapshot error for %s, got %v", sixth, err)
	}
	if len(outcomes) != 2 || outcomes[0].Err == nil || outcomes[1].Err != nil {
		t.Fatalf("unexpected outcomes %+v", outcomes)
	}
	if env.recorder.Division(sixth).StageErrors != 1 {
		t.Fatalf("expected stage error recorded")
	}
}

func TestAnalyzerReportsStoredParseWarnings(t *testing.T) {
	env := newAnalyzerEnv(t, []string{sixth}, "")
	dir := snapshots.DivisionDir(env.dataDir, sixth)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[{"home_team":"Lakeside","away_team":"Shorewood","date":"2024-01-13","home_score":44,"away_score":40},
{"home_team":"Lakeside","away_team":"","date":"2024-01-13"}]`
	if err := os.WriteFile(filepath.Join(dir, "2024-01-13.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	outcomes, err := env.analyzer.Run(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(outcomes[0].Warnings) != 1 {
		t.Fatalf("expected one parse warning, got %v", outcomes[0].Warnings)
	}
	if outcomes[0].Comparison.Summary.NewGames != 1 {
		t.Fatalf("expected dropped record excluded, got %+v", outcomes[0].Comparison.Summary)
	}
}

func TestAnalyzerStopsOnCanceledContext(t *testing.T) {
	env := newAnalyzerEnv(t, []string{sixth}, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcomes, err := env.analyzer.Run(ctx)
	if !errors.Is(err, context.Canceled) || len(outcomes) != 0 {
		t.Fatalf("expected cancellation, got %v / %d outcomes", err, len(outcomes))
	}
}

func TestNewAnalyzerRequiresCollaborators(t *testing.T) {
	engine, _ := ratings.New(ratings.Config{Alpha: 0.1})
	if _, err := NewAnalyzer(AnalyzerConfig{Engine: engine}); err == nil {
		t.Fatalf("expected error without store")
	}
	if _, err := NewAnalyzer(AnalyzerConfig{Store: snapshots.NewFSStore(t.TempDir())}); err == nil {
		t.Fatalf("expected error without engine")
	}
}
