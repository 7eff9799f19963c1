package config

import "time"

// RetryConfig bounds one feed's fetch attempts.
type RetryConfig struct {
	MaxAttempts    int
	Backoff        time.Duration
	AttemptTimeout time.Duration
}

// NBACDNConfig controls the primary provider's league-wide feeds.
type NBACDNConfig struct {
	StandingsURL string
	ScheduleURL  string
	Retry        RetryConfig
}

// ESPNConfig controls the secondary provider's grouped standings feed and
// per-team schedule feed template.
type ESPNConfig struct {
	StandingsURL    string
	TeamScheduleURL string
	Retry           RetryConfig
}

func loadNBACDN() NBACDNConfig {
	return NBACDNConfig{
		StandingsURL: envOrDefault(envNbaStandingsURL, ""),
		ScheduleURL:  envOrDefault(envNbaScheduleURL, ""),
		Retry: RetryConfig{
			MaxAttempts:    intEnvOrDefault(envPrimaryAttempts, defaultPrimaryAttempts),
			Backoff:        durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
			AttemptTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		},
	}
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		StandingsURL:    envOrDefault(envEspnStandingsURL, ""),
		TeamScheduleURL: envOrDefault(envEspnTeamScheduleURL, ""),
		Retry: RetryConfig{
			MaxAttempts:    intEnvOrDefault(envFallbackAttempts, defaultFallbackAttempts),
			Backoff:        durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
			AttemptTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		},
	}
}
