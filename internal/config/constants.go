package config

import "time"

const (
	envDataDir        = "HOOPS_DATA_DIR"
	envReportDir      = "HOOPS_REPORT_DIR"
	envDivisions      = "HOOPS_DIVISIONS"
	envTeamFilter     = "HOOPS_TEAM_FILTER"
	envSource         = "HOOPS_SOURCE"
	envSourceURL      = "HOOPS_SOURCE_URL"
	envSourceTimeout  = "HOOPS_SOURCE_TIMEOUT"
	envSourceRetries  = "HOOPS_SOURCE_RETRIES"
	envSourceBackoff  = "HOOPS_SOURCE_BACKOFF"
	envSourceInterval = "HOOPS_SOURCE_INTERVAL"
	envUserAgent      = "HOOPS_USER_AGENT"
	envAlpha          = "HOOPS_RATING_ALPHA"
	envFieldPriority  = "HOOPS_FIELD_PRIORITY"
	envMinGames       = "HOOPS_MIN_GAMES"
	envMarginCap      = "HOOPS_MARGIN_CAP"
	envMaxIterations  = "HOOPS_MAX_ITERATIONS"
	envTolerance      = "HOOPS_TOLERANCE"
	envRetentionDays  = "HOOPS_RETENTION_DAYS"
	envMetricsOn      = "METRICS_ENABLED"
	envMetricsFile    = "METRICS_TEXTFILE"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	SourceExposure = "exposure"
	SourceFixture  = "fixture"

	defaultDataDir    = "data/snapshots"
	defaultReportDir  = "data/reports"
	defaultSourceKind = SourceExposure
	defaultSourceURL  = "https://basketball.exposureevents.com/256814/wesco-girls-aau/schedule"
	// Matches a desktop browser; the events site serves a reduced page to unknown agents.
	defaultUserAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultSourceTimeout = 30 * Duration(time.Second)
	defaultSourceRetries = 3
	defaultSourceBackoff = 2 * Duration(time.Second)
	// Minimum gap between two page fetches.
	defaultSourceInterval = Duration(time.Second)

	defaultAlpha         = 0.1
	defaultMinGames      = 1
	defaultMarginCap     = 99
	defaultMaxIterations = 5000
	defaultTolerance     = 1e-6
	// Keep a full season of daily snapshots.
	defaultRetentionDays = 180

	defaultServiceName = "hoops-analytics"
)

var (
	defaultDivisions     = []string{"4th Girls", "5th Girls", "6th Girls", "7th Girls", "8th Girls"}
	defaultFieldPriority = []string{"score", "date", "time", "venue"}
	comparableFields     = []string{"score", "date", "time", "venue"}
)
