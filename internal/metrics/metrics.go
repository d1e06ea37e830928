package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type divisionStats struct {
	kept          int
	dropped       int
	fieldWarnings int
	snapshots     int
	changes       map[string]int
	ratingRuns    int
	lowConfidence int
	stageErrors   int
}

// Recorder captures lightweight, in-memory metrics about provider calls and pipeline
// stages, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	divisions map[string]*divisionStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*providerStats),
		divisions: make(map[string]*divisionStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.withProvider(provider, func(stats *providerStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.withProvider(provider, func(stats *providerStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordParse tracks how many raw records of a division were kept, dropped or kept with
// a field warning.
func (r *Recorder) RecordParse(division string, kept, dropped, fieldWarnings int) {
	if r == nil {
		return
	}
	r.withDivision(division, func(stats *divisionStats) {
		stats.kept += kept
		stats.dropped += dropped
		stats.fieldWarnings += fieldWarnings
	})
	if r.otel != nil {
		r.otel.recordParse(division, kept, dropped, fieldWarnings)
	}
}

// RecordSnapshotWrite counts snapshots persisted; unchanged snapshots are not counted.
func (r *Recorder) RecordSnapshotWrite(division string, written bool) {
	if r == nil || !written {
		return
	}
	r.withDivision(division, func(stats *divisionStats) {
		stats.snapshots++
	})
	if r.otel != nil {
		r.otel.recordSnapshot(division)
	}
}

// RecordComparison adds the per change type counts of one comparison pass.
func (r *Recorder) RecordComparison(division string, counts map[string]int) {
	if r == nil {
		return
	}
	r.withDivision(division, func(stats *divisionStats) {
		for changeType, n := range counts {
			stats.changes[changeType] += n
		}
	})
	if r.otel != nil {
		r.otel.recordComparison(division, counts)
	}
}

// RecordRatingRun tracks one rating fit.
func (r *Recorder) RecordRatingRun(division string, duration time.Duration, iterations int, lowConfidence bool) {
	if r == nil {
		return
	}
	r.withDivision(division, func(stats *divisionStats) {
		stats.ratingRuns++
		if lowConfidence {
			stats.lowConfidence++
		}
	})
	if r.otel != nil {
		r.otel.recordRating(division, duration, iterations, lowConfidence)
	}
}

// RecordStage tracks the duration and outcome of a pipeline stage for a division.
func (r *Recorder) RecordStage(stage, division string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.withDivision(division, func(stats *divisionStats) {
			stats.stageErrors++
		})
	}
	if r.otel != nil {
		r.otel.recordStage(stage, division, duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// DivisionSnapshot is a copy of the pipeline counters for one division.
type DivisionSnapshot struct {
	Kept          int
	Dropped       int
	FieldWarnings int
	Snapshots     int
	Changes       map[string]int
	RatingRuns    int
	LowConfidence int
	StageErrors   int
}

// Division returns the pipeline counters recorded for a division.
func (r *Recorder) Division(division string) DivisionSnapshot {
	out := DivisionSnapshot{Changes: map[string]int{}}
	if r == nil {
		return out
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.divisions[division]
	if !ok {
		return out
	}
	for k, v := range stats.changes {
		out.Changes[k] = v
	}
	out.Kept = stats.kept
	out.Dropped = stats.dropped
	out.FieldWarnings = stats.fieldWarnings
	out.Snapshots = stats.snapshots
	out.RatingRuns = stats.ratingRuns
	out.LowConfidence = stats.lowConfidence
	out.StageErrors = stats.stageErrors
	return out
}

func (r *Recorder) withProvider(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	fn(stats)
}

func (r *Recorder) withDivision(division string, fn func(*divisionStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.divisions[division]
	if !ok {
		stats = &divisionStats{changes: make(map[string]int)}
		r.divisions[division] = stats
	}
	fn(stats)
}
