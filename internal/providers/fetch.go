package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tankwatch/internal/logging"
	"tankwatch/internal/metrics"
)

const (
	userAgent      = "tankwatch/1.0"
	maxBodyExcerpt = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves JSON feeds for one provider with per-attempt timeouts,
// linear retry, and attempt-level metrics.
type Fetcher struct {
	client   httpDoer
	policy   RetryPolicy
	logger   *slog.Logger
	recorder *metrics.Recorder
	provider string
}

func NewFetcher(client *http.Client, policy RetryPolicy, logger *slog.Logger, recorder *metrics.Recorder, provider string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:   client,
		policy:   policy,
		logger:   logger,
		recorder: recorder,
		provider: provider,
	}
}

// FetchJSON retrieves url and decodes the response body as arbitrary JSON.
// The feed name labels errors, logs, and metrics.
func (f *Fetcher) FetchJSON(ctx context.Context, feed, url string) (any, error) {
	var doc any
	err := retryFeed(ctx, f.policy, func(attemptCtx context.Context, attempt int) error {
		start := time.Now()
		fetched, fetchErr := f.fetchOnce(attemptCtx, feed, url)
		f.recorder.RecordFeedAttempt(f.provider, feed, time.Since(start), fetchErr)
		if fetchErr != nil {
			logging.Warn(f.logger, "feed fetch attempt failed",
				logging.FieldProvider, f.provider,
				logging.FieldFeed, feed,
				logging.FieldAttempt, attempt,
				logging.FieldKind, Classify(fetchErr),
				"error", fetchErr,
			)
			return fetchErr
		}
		doc = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, feed, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", feed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{Feed: feed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyExcerpt))
		return nil, &StatusError{Feed: feed, StatusCode: resp.StatusCode, Body: string(excerpt)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Feed: feed, Err: err}
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		// A malformed body may be a transient truncation; leave it
		// retryable. ShapeError is reserved for normalized documents
		// that resolve too few entities.
		return nil, fmt.Errorf("decode %s feed: %w", feed, err)
	}
	return doc, nil
}
