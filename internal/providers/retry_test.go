package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    maxAttempts,
		Backoff:        time.Millisecond,
		AttemptTimeout: time.Second,
	}
}

func TestRetryFeedSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := retryFeed(context.Background(), fastPolicy(3), func(ctx context.Context, attempt int) error {
		calls++
		if calls < 3 {
			return &TransportError{Feed: "standings", Err: errors.New("reset")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("retryFeed returned error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRetryFeedExhaustsAttempts(t *testing.T) {
	calls := 0
	err := retryFeed(context.Background(), fastPolicy(3), func(ctx context.Context, attempt int) error {
		calls++
		return &StatusError{Feed: "standings", StatusCode: 503}
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRetryFeedStopsOnShapeError(t *testing.T) {
	calls := 0
	err := retryFeed(context.Background(), fastPolicy(3), func(ctx context.Context, attempt int) error {
		calls++
		return &ShapeError{Feed: "standings", Reason: "no teams found"}
	})
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (shape errors are terminal)", calls)
	}
}

func TestRetryFeedHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retryFeed(ctx, fastPolicy(5), func(ctx context.Context, attempt int) error {
		calls++
		cancel()
		return &TransportError{Feed: "schedule", Err: errors.New("refused")}
	})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestLinearBackOffSchedule(t *testing.T) {
	lin := &linearBackOff{base: 100 * time.Millisecond}
	for i, want := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond} {
		if got := lin.NextBackOff(); got != want {
			t.Fatalf("delay %d = %v, want %v", i, got, want)
		}
	}
	lin.Reset()
	if got := lin.NextBackOff(); got != 100*time.Millisecond {
		t.Fatalf("delay after reset = %v, want 100ms", got)
	}
}
