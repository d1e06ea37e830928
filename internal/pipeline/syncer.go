package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/logging"
	"github.com/preston-bernstein/hoops-analytics/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics/internal/providers"
	"github.com/preston-bernstein/hoops-analytics/internal/timeutil"
)

const stageSync = "sync"

// ErrEmptySchedule is returned when a provider yields no records for a division. The
// snapshot is not written, so a broken page never reads as every game being removed.
var ErrEmptySchedule = errors.New("provider returned no games")

// SnapshotWriter persists division snapshots.
type SnapshotWriter interface {
	WriteSnapshot(division, date string, list []games.Game) (bool, error)
}

// SyncResult describes one division of a sync run.
type SyncResult struct {
	Division string
	Date     string
	Fetched  int
	Kept     int
	Dropped  int
	Warnings int
	Written  bool
	Err      error
}

// Syncer fetches each division's schedule, validates it and stores the day's snapshot.
type Syncer struct {
	provider  providers.GameProvider
	writer    SnapshotWriter
	divisions []string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewSyncer constructs a Syncer for the given divisions.
func NewSyncer(provider providers.GameProvider, writer SnapshotWriter, divisions []string, logger *slog.Logger, recorder *metrics.Recorder) *Syncer {
	return &Syncer{
		provider:  provider,
		writer:    writer,
		divisions: append([]string(nil), divisions...),
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// Run syncs every division for date (YYYY-MM-DD, empty for today). A failing division
// does not stop the others; failures are joined into the returned error.
func (s *Syncer) Run(ctx context.Context, date string) ([]SyncResult, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	if s.writer == nil {
		return nil, errors.New("snapshot writer not configured")
	}
	if date == "" {
		date = timeutil.FormatDate(s.now().UTC())
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid snapshot date %q: %w", date, err)
	}

	results := make([]SyncResult, 0, len(s.divisions))
	var errs []error
	for _, division := range s.divisions {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res := s.syncDivision(ctx, division, date)
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", division, res.Err))
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func (s *Syncer) syncDivision(ctx context.Context, division, date string) SyncResult {
	start := time.Now()
	res := SyncResult{Division: division, Date: date}
	logger := logging.FromContext(ctx, s.logger)

	raws, err := s.provider.FetchGames(ctx, division)
	if err == nil && len(raws) == 0 {
		err = ErrEmptySchedule
	}
	if err != nil {
		res.Err = err
		s.metrics.RecordStage(stageSync, division, time.Since(start), err)
		logging.Error(logger, "schedule fetch failed", err,
			logging.FieldDivision, division,
			logging.FieldDate, date,
		)
		return res
	}
	res.Fetched = len(raws)

	list, problems := games.ParseBatch(raws, division)
	res.Kept = len(list)
	res.Dropped = len(raws) - len(list)
	res.Warnings = len(problems) - res.Dropped
	for _, problem := range problems {
		logging.Warn(logger, "game record rejected",
			logging.FieldDivision, division,
			logging.FieldDate, date,
			"error", problem,
		)
	}
	s.metrics.RecordParse(division, res.Kept, res.Dropped, res.Warnings)

	written, err := s.writer.WriteSnapshot(division, date, list)
	s.metrics.RecordSnapshotWrite(division, written)
	s.metrics.RecordStage(stageSync, division, time.Since(start), err)
	if err != nil {
		res.Err = fmt.Errorf("write snapshot: %w", err)
		logging.Error(logger, "snapshot write failed", err, logging.FieldDivision, division, logging.FieldDate, date)
		return res
	}
	res.Written = written

	logging.Info(logger, "snapshot synced",
		logging.FieldDivision, division,
		logging.FieldDate, date,
		logging.FieldCount, res.Kept,
		logging.FieldDropped, res.Dropped,
		logging.FieldWarnings, res.Warnings,
		"written", written,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return res
}
