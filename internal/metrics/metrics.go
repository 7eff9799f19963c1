package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	attempts    int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed fetches,
// provider outcomes and pipeline runs. It mirrors into OpenTelemetry
// instruments when telemetry is configured.
type Recorder struct {
	mu               sync.Mutex
	feeds            map[string]*feedStats
	providerFailures map[string]int
	runs             map[string]int
	otel             *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds:            make(map[string]*feedStats),
		providerFailures: make(map[string]int),
		runs:             make(map[string]int),
		otel:             otel,
	}
}

// RecordFeedAttempt counts one fetch attempt for a provider feed and stores
// the last observed latency.
func (r *Recorder) RecordFeedAttempt(provider, feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureFeed(provider, feed)
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedAttempt(provider, feed, duration, err)
	}
}

// RecordProviderFailure counts one provider giving up, tagged with the
// advisory failure classification.
func (r *Recorder) RecordProviderFailure(provider, kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.providerFailures[provider]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderFailure(provider, kind)
	}
}

// RecordRun counts one completed pipeline run by outcome.
func (r *Recorder) RecordRun(outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(outcome, duration)
	}
}

// FeedAttempts returns the attempts recorded for a provider feed.
func (r *Recorder) FeedAttempts(provider, feed string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureFeed(provider, feed).attempts
}

// FeedErrors returns the failed attempts recorded for a provider feed.
func (r *Recorder) FeedErrors(provider, feed string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureFeed(provider, feed).errors
}

// ProviderFailures returns how often a provider gave up entirely.
func (r *Recorder) ProviderFailures(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providerFailures[provider]
}

// Runs returns the number of completed runs with the given outcome.
func (r *Recorder) Runs(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[outcome]
}

func (r *Recorder) ensureFeed(provider, feed string) *feedStats {
	key := provider + "/" + feed
	stats, ok := r.feeds[key]
	if !ok {
		stats = &feedStats{}
		r.feeds[key] = stats
	}
	return stats
}
