package config

import "time"

const (
	envTrackedTeams  = "TRACKED_TEAMS"
	envWindowDays    = "SCHEDULE_WINDOW_DAYS"
	envOutputPath    = "OUTPUT_PATH"
	envSnapshotPath  = "SNAPSHOT_PATH"
	envProviderOrder = "PROVIDER_ORDER"

	envNbaStandingsURL     = "NBA_STANDINGS_URL"
	envNbaScheduleURL      = "NBA_SCHEDULE_URL"
	envEspnStandingsURL    = "ESPN_STANDINGS_URL"
	envEspnTeamScheduleURL = "ESPN_TEAM_SCHEDULE_URL"

	envPrimaryAttempts  = "PRIMARY_MAX_ATTEMPTS"
	envFallbackAttempts = "FALLBACK_MAX_ATTEMPTS"
	envFetchBackoff     = "FETCH_BACKOFF"
	envFetchTimeout     = "FETCH_TIMEOUT"

	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// The table has shipped with both 12 and 14 tracked teams.
	defaultTrackedTeams = 14
	// Extended schedule window; set to 1 for the single-day variant.
	defaultWindowDays    = 3
	defaultOutputPath    = "public/data.json"
	defaultSnapshotPath  = "data/last_good.json"
	defaultProviderOrder = "nbacdn,espn"

	defaultPrimaryAttempts  = 3
	defaultFallbackAttempts = 2
	defaultFetchBackoff     = 250 * time.Millisecond
	// Per-attempt wall clock; an attempt past this is aborted and retried.
	defaultFetchTimeout = 10 * time.Second

	defaultMetricsPort = "9090"
)
