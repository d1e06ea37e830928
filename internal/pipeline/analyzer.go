package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/logging"
	"github.com/preston-bernstein/hoops-analytics/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
	"github.com/preston-bernstein/hoops-analytics/internal/snapshots"
)

const stageAnalyze = "analyze"

// ReportWriter persists the reports of one division.
type ReportWriter interface {
	Write(b report.Bundle) (report.Files, error)
}

// Outcome is the result of analyzing one division.
type Outcome struct {
	Division     string
	Date         string
	PreviousDate string
	Comparison   compare.Result
	Ratings      ratings.Result
	Files        report.Files
	// Warnings holds parse problems of both snapshots; rating warnings stay on Ratings.
	Warnings []error
	Err      error
}

// Analyzer compares each division's latest snapshot with the one before it, rates the
// teams and writes the reports.
type Analyzer struct {
	store      snapshots.Store
	comparator *compare.Comparator
	engine     *ratings.Engine
	reports    ReportWriter
	divisions  []string
	teamFilter string
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// AnalyzerConfig groups the collaborators of an Analyzer.
type AnalyzerConfig struct {
	Store      snapshots.Store
	Comparator *compare.Comparator
	Engine     *ratings.Engine
	Reports    ReportWriter
	Divisions  []string
	// TeamFilter, when set, gets its own schedule file per division.
	TeamFilter string
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// NewAnalyzer constructs an Analyzer. A nil comparator uses the default field priority.
func NewAnalyzer(cfg AnalyzerConfig) (*Analyzer, error) {
	if cfg.Store == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if cfg.Engine == nil {
		return nil, errors.New("rating engine not configured")
	}
	comparator := cfg.Comparator
	if comparator == nil {
		comparator = compare.Default()
	}
	return &Analyzer{
		store:      cfg.Store,
		comparator: comparator,
		engine:     cfg.Engine,
		reports:    cfg.Reports,
		divisions:  append([]string(nil), cfg.Divisions...),
		teamFilter: cfg.TeamFilter,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}, nil
}

// Run analyzes every division in order. Failures are recorded on the outcome and joined
// into the returned error; the remaining divisions still run.
func (a *Analyzer) Run(ctx context.Context) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(a.divisions))
	var errs []error
	for _, division := range a.divisions {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		out := a.Analyze(ctx, division)
		if out.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", division, out.Err))
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, errors.Join(errs...)
}

// Analyze runs one division. Without an earlier snapshot every current game is ADDED.
func (a *Analyzer) Analyze(ctx context.Context, division string) Outcome {
	start := time.Now()
	logger := logging.FromContext(ctx, a.logger)
	out := Outcome{Division: division}
	fail := func(err error) Outcome {
		out.Err = err
		a.metrics.RecordStage(stageAnalyze, division, time.Since(start), err)
		logging.Error(logger, "division analysis failed", err, logging.FieldDivision, division)
		return out
	}

	latest, err := a.store.Latest(division)
	if err != nil {
		return fail(err)
	}
	out.Date = latest
	current, warnings, err := a.store.Load(division, latest)
	if err != nil {
		return fail(err)
	}
	out.Warnings = append(out.Warnings, warnings...)

	var previous games.Snapshot
	prevDate, err := a.store.Previous(division, latest)
	switch {
	case errors.Is(err, snapshots.ErrNoSnapshot):
		logging.Info(logger, "no earlier snapshot, treating every game as added",
			logging.FieldDivision, division, logging.FieldDate, latest)
	case err != nil:
		return fail(err)
	default:
		previous, warnings, err = a.store.Load(division, prevDate)
		if err != nil {
			return fail(err)
		}
		out.PreviousDate = prevDate
		out.Warnings = append(out.Warnings, warnings...)
	}
	for _, w := range out.Warnings {
		logging.Warn(logger, "stored game record rejected", logging.FieldDivision, division, "error", w)
	}

	out.Comparison = a.comparator.Compare(previous.Games, current.Games)
	if n := out.Comparison.Summary.Duplicates; n > 0 {
		logging.Warn(logger, "duplicate game ids ignored",
			logging.FieldDivision, division,
			logging.FieldCount, n,
			"game_ids", out.Comparison.Summary.DuplicateIDs,
		)
	}
	a.metrics.RecordComparison(division, changeCounts(out.Comparison.Summary))

	rateStart := time.Now()
	out.Ratings = a.engine.Rate(current.Games)
	a.metrics.RecordRatingRun(division, time.Since(rateStart), out.Ratings.Stats.Iterations, out.Ratings.LowConfidence)
	for _, w := range out.Ratings.Warnings {
		logging.Warn(logger, "rating warning", logging.FieldDivision, division, "error", w)
	}

	if a.reports != nil {
		files, err := a.reports.Write(report.Bundle{
			Division:     division,
			Date:         out.Date,
			PreviousDate: out.PreviousDate,
			Comparison:   out.Comparison,
			Ratings:      out.Ratings,
			Teams:        a.teamsFor(current.Games),
			Warnings:     out.Warnings,
		})
		if err != nil {
			return fail(fmt.Errorf("write reports: %w", err))
		}
		out.Files = files
	}

	a.metrics.RecordStage(stageAnalyze, division, time.Since(start), nil)
	logging.Info(logger, "division analyzed",
		logging.FieldDivision, division,
		logging.FieldDate, out.Date,
		"previous_date", out.PreviousDate,
		"changed", out.Comparison.Summary.Changed(),
		"rated_teams", len(out.Ratings.Ratings),
		"low_confidence", out.Ratings.LowConfidence,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return out
}

func (a *Analyzer) teamsFor(list []games.Game) []string {
	if a.teamFilter == "" {
		return nil
	}
	for _, g := range list {
		if g.Involves(a.teamFilter) {
			return []string{a.teamFilter}
		}
	}
	return nil
}

func changeCounts(s compare.Summary) map[string]int {
	out := make(map[string]int, len(s.Counts))
	for t, n := range s.Counts {
		out[string(t)] = n
	}
	return out
}
