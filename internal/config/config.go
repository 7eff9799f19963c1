package config

// Config holds the immutable runtime configuration for one pipeline run.
type Config struct {
	TrackedTeams  int
	WindowDays    int
	OutputPath    string
	SnapshotPath  string
	ProviderOrder []string
	NBACDN        NBACDNConfig
	ESPN          ESPNConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		TrackedTeams:  intEnvOrDefault(envTrackedTeams, defaultTrackedTeams),
		WindowDays:    intEnvOrDefault(envWindowDays, defaultWindowDays),
		OutputPath:    envOrDefault(envOutputPath, defaultOutputPath),
		SnapshotPath:  envOrDefault(envSnapshotPath, defaultSnapshotPath),
		ProviderOrder: listEnvOrDefault(envProviderOrder, defaultProviderOrder),
		NBACDN:        loadNBACDN(),
		ESPN:          loadESPN(),
		Metrics:       loadMetrics(),
	}
}
