// Package publish assembles output payloads and writes them to the
// serving path, keeping a snapshot of the last live publish for fallback.
package publish

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tankwatch/internal/domain"
	"tankwatch/internal/logging"
	"tankwatch/internal/providers"
	"tankwatch/internal/snapshots"
)

// Publisher writes payloads to the output path and maintains the
// last-good snapshot.
type Publisher struct {
	out    string
	store  *snapshots.Store
	logger *slog.Logger
	now    func() time.Time
}

func New(outputPath string, store *snapshots.Store, logger *slog.Logger) *Publisher {
	return &Publisher{
		out:    outputPath,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// PublishLive writes a freshly computed payload to the output path and
// records it as the new snapshot. A snapshot write failure does not fail
// the publish; the live output already landed.
func (p *Publisher) PublishLive(provider string, dataSources map[string]string, schedule []domain.ScheduleDay, rows []domain.Row) (domain.Payload, error) {
	now := p.now().UTC()
	payload := domain.Payload{
		GeneratedAt: now,
		DataSources: dataSources,
		RefreshStatus: domain.RefreshStatus{
			Source:      domain.SourceLive,
			Provider:    provider,
			GeneratedAt: now,
		},
		Schedule: schedule,
		Rows:     rows,
	}

	if err := p.write(payload); err != nil {
		return domain.Payload{}, err
	}
	if err := p.store.Write(payload); err != nil {
		logging.Warn(p.logger, "snapshot write failed", logging.FieldProvider, provider, "error", err)
	}
	return payload, nil
}

// PublishCached republishes the last-good snapshot after a failed
// refresh. Rows, schedule, and data sources are untouched; only the
// refresh status changes to describe the failure. The snapshot itself
// is never rewritten, so the live data it holds survives repeated
// fallbacks.
func (p *Publisher) PublishCached(cause error) (domain.Payload, error) {
	payload, err := p.store.Load()
	if err != nil {
		return domain.Payload{}, fmt.Errorf("no cached snapshot available: %w", err)
	}

	lastLive := payload.RefreshStatus.GeneratedAt
	if payload.RefreshStatus.LastLiveGeneratedAt != nil {
		lastLive = *payload.RefreshStatus.LastLiveGeneratedAt
	}
	attemptedAt := p.now().UTC()

	payload.RefreshStatus.Source = domain.SourceCached
	payload.RefreshStatus.LastLiveGeneratedAt = &lastLive
	payload.RefreshStatus.AttemptedAt = &attemptedAt
	payload.RefreshStatus.FailureKind = providers.Classify(cause)
	payload.RefreshStatus.FailureDetail = cause.Error()

	if err := p.write(payload); err != nil {
		return domain.Payload{}, err
	}
	return payload, nil
}

func (p *Publisher) write(payload domain.Payload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := snapshots.WriteFileAtomic(p.out, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
