package providers

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts    = 3
	defaultBackoffBase    = 250 * time.Millisecond
	defaultAttemptTimeout = 10 * time.Second
)

// RetryPolicy controls how a single feed request is retried. The delay
// grows linearly with the attempt number: base, 2*base, and so on.
type RetryPolicy struct {
	MaxAttempts    int
	Backoff        time.Duration
	AttemptTimeout time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.Backoff <= 0 {
		p.Backoff = defaultBackoffBase
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = defaultAttemptTimeout
	}
	return p
}

// linearBackOff yields base, 2*base, 3*base between attempts.
type linearBackOff struct {
	base    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.base
}

func (b *linearBackOff) Reset() { b.attempt = 0 }

// retryFeed runs op up to policy.MaxAttempts times. Each attempt gets its
// own timeout. Shape errors are terminal and stop the loop immediately.
func retryFeed(ctx context.Context, policy RetryPolicy, op func(ctx context.Context, attempt int) error) error {
	policy = policy.withDefaults()

	attempt := 0
	wrapped := func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, policy.AttemptTimeout)
		defer cancel()

		err := op(attemptCtx, attempt)
		if err == nil {
			return nil
		}
		var shapeErr *ShapeError
		if errors.As(err, &shapeErr) {
			return backoff.Permanent(err)
		}
		return err
	}

	lin := &linearBackOff{base: policy.Backoff}
	schedule := backoff.WithContext(backoff.WithMaxRetries(lin, uint64(policy.MaxAttempts-1)), ctx)
	return backoff.Retry(wrapped, schedule)
}
