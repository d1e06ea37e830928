package config

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Config holds runtime configuration for the scrape/analyze pipeline.
type Config struct {
	Divisions  []string       `yaml:"divisions"`
	TeamFilter string         `yaml:"team_filter"`
	Source     SourceConfig   `yaml:"source"`
	Snapshots  SnapshotConfig `yaml:"snapshots"`
	Analysis   AnalysisConfig `yaml:"analysis"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Divisions: append([]string(nil), defaultDivisions...),
		Source:    defaultSource(),
		Snapshots: defaultSnapshots(),
		Analysis:  defaultAnalysis(),
		Metrics:   defaultMetrics(),
	}
}

// Load layers defaults, an optional YAML file and environment overrides, then validates.
// An invalid result is reported as a *ConfigError and must abort the run.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, &ConfigError{Field: "file", Reason: fmt.Sprintf("%s: %v", path, err)}
		}
	}
	cfg = cfg.withEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withEnv() Config {
	c.Divisions = listEnvOrDefault(envDivisions, c.Divisions)
	c.TeamFilter = envOrDefault(envTeamFilter, c.TeamFilter)
	c.Source = c.Source.withEnv()
	c.Snapshots = c.Snapshots.withEnv()
	c.Analysis = c.Analysis.withEnv()
	c.Metrics = c.Metrics.withEnv()
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if len(c.Divisions) == 0 {
		return &ConfigError{Field: "divisions", Reason: "at least one division is required"}
	}
	for _, d := range c.Divisions {
		if strings.TrimSpace(d) == "" {
			return &ConfigError{Field: "divisions", Reason: "division names cannot be blank"}
		}
	}
	switch c.Source.Kind {
	case SourceExposure, SourceFixture:
	default:
		return &ConfigError{Field: "source.kind", Reason: fmt.Sprintf("unknown source %q", c.Source.Kind)}
	}
	if c.Source.Kind == SourceExposure && strings.TrimSpace(c.Source.URL) == "" {
		return &ConfigError{Field: "source.url", Reason: "required for the exposure source"}
	}
	if c.Snapshots.DataDir == "" {
		return &ConfigError{Field: "snapshots.data_dir", Reason: "required"}
	}
	if c.Snapshots.ReportDir == "" {
		return &ConfigError{Field: "snapshots.report_dir", Reason: "required"}
	}
	if c.Snapshots.RetentionDays < 0 {
		return &ConfigError{Field: "snapshots.retention_days", Reason: "cannot be negative"}
	}
	return c.Analysis.Validate()
}

// Validate checks the core analysis settings.
func (a AnalysisConfig) Validate() error {
	if !(a.Alpha > 0) {
		return &ConfigError{Field: "analysis.alpha", Reason: fmt.Sprintf("must be > 0, got %v", a.Alpha)}
	}
	if len(a.FieldPriority) == 0 {
		return &ConfigError{Field: "analysis.field_priority", Reason: "must list at least one field"}
	}
	seen := make(map[string]struct{}, len(a.FieldPriority))
	for _, raw := range a.FieldPriority {
		f := strings.ToLower(strings.TrimSpace(raw))
		if !containsString(comparableFields, f) {
			return &ConfigError{Field: "analysis.field_priority", Reason: fmt.Sprintf("unknown field %q", raw)}
		}
		if _, dup := seen[f]; dup {
			return &ConfigError{Field: "analysis.field_priority", Reason: fmt.Sprintf("field %q listed twice", raw)}
		}
		seen[f] = struct{}{}
	}
	if a.MinGamesForRating < 1 {
		return &ConfigError{Field: "analysis.min_games_for_rating", Reason: "must be >= 1"}
	}
	if a.MarginCap <= 0 {
		return &ConfigError{Field: "analysis.margin_cap", Reason: "must be > 0"}
	}
	if a.MaxIterations <= 0 {
		return &ConfigError{Field: "analysis.max_iterations", Reason: "must be > 0"}
	}
	if !(a.Tolerance > 0) {
		return &ConfigError{Field: "analysis.tolerance", Reason: "must be > 0"}
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
