package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.TrackedTeams != defaultTrackedTeams {
		t.Fatalf("expected %d tracked teams, got %d", defaultTrackedTeams, cfg.TrackedTeams)
	}
	if cfg.WindowDays != defaultWindowDays {
		t.Fatalf("expected %d window days, got %d", defaultWindowDays, cfg.WindowDays)
	}
	if len(cfg.ProviderOrder) != 2 || cfg.ProviderOrder[0] != "nbacdn" || cfg.ProviderOrder[1] != "espn" {
		t.Fatalf("unexpected provider order %v", cfg.ProviderOrder)
	}
	if cfg.NBACDN.Retry.MaxAttempts != defaultPrimaryAttempts {
		t.Fatalf("unexpected primary attempts %d", cfg.NBACDN.Retry.MaxAttempts)
	}
	if cfg.ESPN.Retry.MaxAttempts != defaultFallbackAttempts {
		t.Fatalf("unexpected fallback attempts %d", cfg.ESPN.Retry.MaxAttempts)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRACKED_TEAMS", "12")
	t.Setenv("SCHEDULE_WINDOW_DAYS", "1")
	t.Setenv("PROVIDER_ORDER", "espn , nbacdn,")
	t.Setenv("FETCH_TIMEOUT", "2s")

	cfg := Load()
	if cfg.TrackedTeams != 12 {
		t.Fatalf("expected override to 12, got %d", cfg.TrackedTeams)
	}
	if cfg.WindowDays != 1 {
		t.Fatalf("expected override to 1, got %d", cfg.WindowDays)
	}
	if len(cfg.ProviderOrder) != 2 || cfg.ProviderOrder[0] != "espn" {
		t.Fatalf("unexpected provider order %v", cfg.ProviderOrder)
	}
	if cfg.ESPN.Retry.AttemptTimeout != 2*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.ESPN.Retry.AttemptTimeout)
	}
}

func TestEnvRejectsInvalidValues(t *testing.T) {
	t.Setenv("TRACKED_TEAMS", "-3")
	t.Setenv("FETCH_BACKOFF", "soon")

	cfg := Load()
	if cfg.TrackedTeams != defaultTrackedTeams {
		t.Fatalf("expected invalid int to fall back, got %d", cfg.TrackedTeams)
	}
	if cfg.NBACDN.Retry.Backoff != defaultFetchBackoff {
		t.Fatalf("expected invalid duration to fall back, got %v", cfg.NBACDN.Retry.Backoff)
	}
}
