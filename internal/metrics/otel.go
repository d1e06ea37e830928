package metrics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "hoops-analytics"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported. Runs are short-lived, so Prometheus
// metrics are written to TextfilePath on shutdown for a node exporter to pick up.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	TextfilePath string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder and a shutdown function that flushes every exporter.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	promReader, registry, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		var errs []error
		// Gather before shutdown; the Prometheus reader is unusable afterwards.
		if cfg.TextfilePath != "" && registry != nil {
			if err := writeTextfile(cfg.TextfilePath, registry); err != nil {
				errs = append(errs, fmt.Errorf("write metrics textfile: %w", err))
			}
		}
		if err := provider.Shutdown(c); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	}

	return rec, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	recordsParsed     metric.Int64Counter
	snapshotsWritten  metric.Int64Counter
	gameChanges       metric.Int64Counter
	ratingRuns        metric.Int64Counter
	ratingIterations  metric.Int64Histogram
	ratingLatencyMs   metric.Float64Histogram
	stageRuns         metric.Int64Counter
	stageErrors       metric.Int64Counter
	stageLatencyMs    metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)
	ctx := context.Background()

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("provider_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("provider_retry_after_ms")
	if err != nil {
		return nil, err
	}
	recordsParsed, err := meter.Int64Counter("game_records_total")
	if err != nil {
		return nil, err
	}
	snapshotsWritten, err := meter.Int64Counter("snapshots_written_total")
	if err != nil {
		return nil, err
	}
	gameChanges, err := meter.Int64Counter("game_changes_total")
	if err != nil {
		return nil, err
	}
	ratingRuns, err := meter.Int64Counter("rating_runs_total")
	if err != nil {
		return nil, err
	}
	ratingIterations, err := meter.Int64Histogram("rating_solver_iterations")
	if err != nil {
		return nil, err
	}
	ratingLatency, err := meter.Float64Histogram("rating_duration_ms")
	if err != nil {
		return nil, err
	}
	stageRuns, err := meter.Int64Counter("pipeline_stage_runs_total")
	if err != nil {
		return nil, err
	}
	stageErrors, err := meter.Int64Counter("pipeline_stage_errors_total")
	if err != nil {
		return nil, err
	}
	stageLatency, err := meter.Float64Histogram("pipeline_stage_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		rateLimitHits:     rateLimitHits,
		retryAfterMs:      retryAfter,
		recordsParsed:     recordsParsed,
		snapshotsWritten:  snapshotsWritten,
		gameChanges:       gameChanges,
		ratingRuns:        ratingRuns,
		ratingIterations:  ratingIterations,
		ratingLatencyMs:   ratingLatency,
		stageRuns:         stageRuns,
		stageErrors:       stageErrors,
		stageLatencyMs:    stageLatency,
	}, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordParse(division string, kept, dropped, fieldWarnings int) {
	if o == nil {
		return
	}
	for outcome, n := range map[string]int{"kept": kept, "dropped": dropped, "field_warning": fieldWarnings} {
		if n == 0 {
			continue
		}
		o.recordCounter(o.recordsParsed, int64(n),
			attribute.String(AttrDivision, division),
			attribute.String(AttrOutcome, outcome),
		)
	}
}

func (o *otelInstruments) recordSnapshot(division string) {
	if o == nil {
		return
	}
	o.recordCounter(o.snapshotsWritten, 1, attribute.String(AttrDivision, division))
}

func (o *otelInstruments) recordComparison(division string, counts map[string]int) {
	if o == nil {
		return
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		o.recordCounter(o.gameChanges, int64(counts[t]),
			attribute.String(AttrDivision, division),
			attribute.String(AttrChangeType, t),
		)
	}
}

func (o *otelInstruments) recordRating(division string, duration time.Duration, iterations int, lowConfidence bool) {
	if o == nil {
		return
	}
	outcome := "converged"
	if lowConfidence {
		outcome = "low_confidence"
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDivision, division)}
	o.recordCounter(o.ratingRuns, 1, append(attrs, attribute.String(AttrOutcome, outcome))...)
	o.ratingIterations.Record(o.ctx, int64(iterations), metric.WithAttributes(attrs...))
	o.recordHistogram(o.ratingLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordStage(stage, division string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrStage, stage),
		attribute.String(AttrDivision, division),
	}
	o.recordCounter(o.stageRuns, 1, attrs...)
	o.recordHistogram(o.stageLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.stageErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
