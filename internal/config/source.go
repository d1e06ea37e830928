package config

// SourceConfig controls how schedules are fetched from the events site.
type SourceConfig struct {
	Kind      string   `yaml:"kind"`
	URL       string   `yaml:"url"`
	UserAgent string   `yaml:"user_agent"`
	Timeout   Duration `yaml:"timeout"`
	Retries   int      `yaml:"retries"`
	Backoff   Duration `yaml:"backoff"`
	Interval  Duration `yaml:"interval"`
}

func defaultSource() SourceConfig {
	return SourceConfig{
		Kind:      defaultSourceKind,
		URL:       defaultSourceURL,
		UserAgent: defaultUserAgent,
		Timeout:   defaultSourceTimeout,
		Retries:   defaultSourceRetries,
		Backoff:   defaultSourceBackoff,
		Interval:  defaultSourceInterval,
	}
}

func (s SourceConfig) withEnv() SourceConfig {
	s.Kind = envOrDefault(envSource, s.Kind)
	s.URL = envOrDefault(envSourceURL, s.URL)
	s.UserAgent = envOrDefault(envUserAgent, s.UserAgent)
	s.Timeout = durationEnvOrDefault(envSourceTimeout, s.Timeout)
	s.Retries = intEnvOrDefault(envSourceRetries, s.Retries)
	s.Backoff = durationEnvOrDefault(envSourceBackoff, s.Backoff)
	s.Interval = durationEnvOrDefault(envSourceInterval, s.Interval)
	return s
}
