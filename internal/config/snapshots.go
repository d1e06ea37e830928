package config

// SnapshotConfig controls where snapshots and reports live and how long snapshots are kept.
type SnapshotConfig struct {
	DataDir       string `yaml:"data_dir"`
	ReportDir     string `yaml:"report_dir"`
	RetentionDays int    `yaml:"retention_days"` // 0 keeps everything
}

func defaultSnapshots() SnapshotConfig {
	return SnapshotConfig{
		DataDir:       defaultDataDir,
		ReportDir:     defaultReportDir,
		RetentionDays: defaultRetentionDays,
	}
}

func (s SnapshotConfig) withEnv() SnapshotConfig {
	s.DataDir = envOrDefault(envDataDir, s.DataDir)
	s.ReportDir = envOrDefault(envReportDir, s.ReportDir)
	s.RetentionDays = intEnvOrDefault(envRetentionDays, s.RetentionDays)
	return s
}
