// Command tankwatch performs one refresh of the worst-teams table: fetch
// standings and schedules from the first healthy provider, aggregate the
// remaining head-to-head matchups and the near-term schedule window, and
// publish the result, falling back to the last-good snapshot when every
// provider fails.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tankwatch/internal/config"
	"tankwatch/internal/logging"
	"tankwatch/internal/metrics"
	"tankwatch/internal/pipeline"
	"tankwatch/internal/providers"
	"tankwatch/internal/providers/espn"
	"tankwatch/internal/providers/nbacdn"
	"tankwatch/internal/publish"
	"tankwatch/internal/snapshots"
)

const appVersion = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "tankwatch",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "telemetry setup failed", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(flushCtx); err != nil {
			logging.Warn(logger, "telemetry shutdown failed", "error", err)
		}
	}()

	if promHandler != nil {
		srv := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: promHandler}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Warn(logger, "metrics listener stopped", "error", err)
			}
		}()
		defer srv.Close()
	}

	sources := buildSources(cfg, logger, recorder)
	runner := pipeline.NewRunner(pipeline.Options{
		Sources:      sources,
		Publisher:    publish.New(cfg.OutputPath, snapshots.NewStore(cfg.SnapshotPath), logger),
		Logger:       logger,
		Recorder:     recorder,
		TrackedTeams: cfg.TrackedTeams,
		WindowDays:   cfg.WindowDays,
	})

	result := runner.Run(ctx)
	switch result.Outcome {
	case pipeline.OutcomeLive:
		logging.Info(logger, "refresh complete",
			logging.FieldSource, result.Outcome,
			logging.FieldProvider, result.Provider,
		)
		return 0
	case pipeline.OutcomeCached:
		logging.Warn(logger, "refresh served cached data",
			logging.FieldProvider, result.Provider,
			"error", result.Err,
		)
		return 0
	default:
		logging.Error(logger, "refresh failed", result.Err)
		return 1
	}
}

func buildSources(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) []providers.Source {
	var sources []providers.Source
	for _, name := range cfg.ProviderOrder {
		switch name {
		case nbacdn.ProviderName:
			sources = append(sources, nbacdn.New(nbacdn.Config{
				StandingsURL: cfg.NBACDN.StandingsURL,
				ScheduleURL:  cfg.NBACDN.ScheduleURL,
				Retry:        retryPolicy(cfg.NBACDN.Retry),
				MinTeams:     cfg.TrackedTeams,
			}, logger, recorder))
		case espn.ProviderName:
			sources = append(sources, espn.New(espn.Config{
				StandingsURL:    cfg.ESPN.StandingsURL,
				TeamScheduleURL: cfg.ESPN.TeamScheduleURL,
				Retry:           retryPolicy(cfg.ESPN.Retry),
				TrackedTeams:    cfg.TrackedTeams,
			}, logger, recorder))
		default:
			logging.Warn(logger, "unknown provider in PROVIDER_ORDER", logging.FieldProvider, name)
		}
	}
	return sources
}

func retryPolicy(rc config.RetryConfig) providers.RetryPolicy {
	return providers.RetryPolicy{
		MaxAttempts:    rc.MaxAttempts,
		Backoff:        rc.Backoff,
		AttemptTimeout: rc.AttemptTimeout,
	}
}
