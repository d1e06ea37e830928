package app

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/hoops-analytics/internal/config"
	"github.com/preston-bernstein/hoops-analytics/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics/internal/providers"
	"github.com/preston-bernstein/hoops-analytics/internal/providers/exposure"
	"github.com/preston-bernstein/hoops-analytics/internal/providers/fixture"
)

const savedPageProvider = "exposure-file"

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.SourceConfig, htmlPath string) providers.GameProvider {
	name := providerName(cfg, htmlPath)
	if htmlPath != "" {
		return providers.NewRetryingProvider(exposure.NewFileSource(htmlPath), f.logger, f.metrics, name, 1, 0)
	}
	// Every division lives on the same page, so consecutive fetches are spaced out.
	limited := providers.NewRateLimitedProvider(selectProvider(cfg, f.logger), cfg.Interval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, cfg.Retries, cfg.Backoff)
}

func selectProvider(cfg config.SourceConfig, logger *slog.Logger) providers.GameProvider {
	switch providerName(cfg, "") {
	case config.SourceFixture:
		return fixture.New()
	case config.SourceExposure:
		return exposure.NewClient(exposure.Config{
			URL:       cfg.URL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown source, falling back to fixture", slog.String("source", cfg.Kind))
		}
		return fixture.New()
	}
}

// providerName keeps naming consistent in metrics and logs.
func providerName(cfg config.SourceConfig, htmlPath string) string {
	if htmlPath != "" {
		return savedPageProvider
	}
	if name := strings.ToLower(strings.TrimSpace(cfg.Kind)); name != "" {
		return name
	}
	return "provider"
}
