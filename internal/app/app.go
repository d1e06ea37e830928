package app

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/hoops-analytics/internal/compare"
	"github.com/preston-bernstein/hoops-analytics/internal/config"
	"github.com/preston-bernstein/hoops-analytics/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics/internal/pipeline"
	"github.com/preston-bernstein/hoops-analytics/internal/ratings"
	"github.com/preston-bernstein/hoops-analytics/internal/report"
	"github.com/preston-bernstein/hoops-analytics/internal/snapshots"
)

var metricsSetup = metrics.Setup

// App wires configuration into the pipeline components shared by every command.
type App struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	metricsStop func(context.Context) error
	comparator  *compare.Comparator
	engine      *ratings.Engine
	snapshots   snapshotComponents
	reports     *report.Writer
}

// New builds the components for a validated configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	comparator, err := compare.New(cfg.Analysis.FieldPriority)
	if err != nil {
		return nil, err
	}
	engine, err := ratings.New(ratingsConfig(cfg.Analysis))
	if err != nil {
		return nil, err
	}
	recorder, stop := buildMetrics(ctx, cfg, logger)
	return &App{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		metricsStop: stop,
		comparator:  comparator,
		engine:      engine,
		snapshots:   buildSnapshots(cfg),
		reports:     report.NewWriter(cfg.Snapshots.ReportDir),
	}, nil
}

func ratingsConfig(a config.AnalysisConfig) ratings.Config {
	return ratings.Config{
		Alpha:         a.Alpha,
		MinGames:      a.MinGamesForRating,
		MarginCap:     a.MarginCap,
		MaxIterations: a.MaxIterations,
		Tolerance:     a.Tolerance,
	}
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		TextfilePath: cfg.Metrics.TextfilePath,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}
	rec, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil
	}
	return rec, shutdown
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config { return a.cfg }

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Metrics returns the shared recorder.
func (a *App) Metrics() *metrics.Recorder { return a.metrics }

// Comparator returns the comparator configured with the field priority.
func (a *App) Comparator() *compare.Comparator { return a.comparator }

// Engine returns the rating engine.
func (a *App) Engine() *ratings.Engine { return a.engine }

// Store returns the snapshot store.
func (a *App) Store() *snapshots.FSStore { return a.snapshots.store }

// Syncer builds a syncer over the configured source. A non-empty htmlPath reads a saved
// schedule page instead.
func (a *App) Syncer(htmlPath string) *pipeline.Syncer {
	provider := newProviderFactory(a.logger, a.metrics).build(a.cfg.Source, htmlPath)
	return pipeline.NewSyncer(provider, a.snapshots.writer, a.cfg.Divisions, a.logger, a.metrics)
}

// Analyzer builds an analyzer over every configured division.
func (a *App) Analyzer() (*pipeline.Analyzer, error) {
	return pipeline.NewAnalyzer(pipeline.AnalyzerConfig{
		Store:      a.snapshots.store,
		Comparator: a.comparator,
		Engine:     a.engine,
		Reports:    a.reports,
		Divisions:  a.cfg.Divisions,
		TeamFilter: a.cfg.TeamFilter,
		Logger:     a.logger,
		Metrics:    a.metrics,
	})
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	if a == nil || a.metricsStop == nil {
		return nil
	}
	return a.metricsStop(ctx)
}
