// Package pipeline drives one refresh: try providers in priority order,
// aggregate the first successful dataset, publish it, and fall back to
// the cached snapshot when every provider fails.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tankwatch/internal/aggregate"
	"tankwatch/internal/domain"
	"tankwatch/internal/logging"
	"tankwatch/internal/metrics"
	"tankwatch/internal/normalize"
	"tankwatch/internal/providers"
	"tankwatch/internal/publish"
)

// Run outcomes, also used as the metrics label.
const (
	OutcomeLive   = "live"
	OutcomeCached = "cached"
	OutcomeFailed = "failed"
)

// RunResult reports what one refresh produced.
type RunResult struct {
	Outcome  string
	Provider string
	Rows     []domain.Row
	Err      error
}

// Runner owns the provider chain and publishing for refresh runs.
type Runner struct {
	sources      []providers.Source
	publisher    *publish.Publisher
	logger       *slog.Logger
	recorder     *metrics.Recorder
	trackedTeams int
	windowDays   int
	now          func() time.Time
}

type Options struct {
	Sources      []providers.Source
	Publisher    *publish.Publisher
	Logger       *slog.Logger
	Recorder     *metrics.Recorder
	TrackedTeams int
	WindowDays   int
}

func NewRunner(opts Options) *Runner {
	return &Runner{
		sources:      opts.Sources,
		publisher:    opts.Publisher,
		logger:       opts.Logger,
		recorder:     opts.Recorder,
		trackedTeams: opts.TrackedTeams,
		windowDays:   opts.WindowDays,
		now:          time.Now,
	}
}

// Run performs one refresh. Providers are consulted in order; the first
// complete dataset wins and later providers are never contacted. When
// all providers fail the last-good snapshot is republished with a
// failure-describing refresh status.
func (r *Runner) Run(ctx context.Context) RunResult {
	start := r.now()
	result := r.run(ctx)
	r.recorder.RecordRun(result.Outcome, r.now().Sub(start))
	return result
}

func (r *Runner) run(ctx context.Context) RunResult {
	var failures []error
	for _, source := range r.sources {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}
		dataset, err := source.Fetch(ctx)
		if err != nil {
			r.recorder.RecordProviderFailure(source.Name(), providers.Classify(err))
			logging.Warn(r.logger, "provider failed",
				logging.FieldProvider, source.Name(),
				logging.FieldKind, providers.Classify(err),
				"error", err,
			)
			failures = append(failures, fmt.Errorf("%s: %w", source.Name(), err))
			continue
		}
		return r.publishLive(dataset)
	}

	cause := errors.Join(failures...)
	if cause == nil {
		cause = errors.New("no providers configured")
	}
	return r.publishCached(cause)
}

func (r *Runner) publishLive(dataset *domain.Dataset) RunResult {
	now := r.now().UTC()
	normalize.SortWorstFirst(dataset.Standings)
	tracked := aggregate.Tracked(dataset.Standings, r.trackedTeams)
	rows := aggregate.BuildRows(tracked, dataset.Games, now)
	schedule := aggregate.BuildScheduleWindow(tracked, dataset.Games, now, r.windowDays)

	payload, err := r.publisher.PublishLive(dataset.Provider, dataset.DataSources, schedule, rows)
	if err != nil {
		logging.Error(r.logger, "live publish failed", err, logging.FieldProvider, dataset.Provider)
		return RunResult{Outcome: OutcomeFailed, Provider: dataset.Provider, Err: err}
	}
	logging.Info(r.logger, "published live data",
		logging.FieldProvider, dataset.Provider,
		logging.FieldSource, domain.SourceLive,
		logging.FieldCount, len(rows),
	)
	return RunResult{Outcome: OutcomeLive, Provider: dataset.Provider, Rows: payload.Rows}
}

func (r *Runner) publishCached(cause error) RunResult {
	payload, err := r.publisher.PublishCached(cause)
	if err != nil {
		logging.Error(r.logger, "cached fallback failed", err)
		return RunResult{Outcome: OutcomeFailed, Err: errors.Join(cause, err)}
	}
	logging.Warn(r.logger, "published cached data",
		logging.FieldProvider, payload.RefreshStatus.Provider,
		logging.FieldSource, domain.SourceCached,
		logging.FieldKind, payload.RefreshStatus.FailureKind,
	)
	return RunResult{
		Outcome:  OutcomeCached,
		Provider: payload.RefreshStatus.Provider,
		Rows:     payload.Rows,
		Err:      cause,
	}
}
