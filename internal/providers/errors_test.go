package providers

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, KindOther},
		{"shape", &ShapeError{Feed: "standings", Reason: "no teams"}, KindShape},
		{"status", &StatusError{Feed: "schedule", StatusCode: 503}, KindHTTP},
		{"transport", &TransportError{Feed: "standings", Err: errors.New("dial tcp: refused")}, KindNetwork},
		{"wrapped shape", fmt.Errorf("fetch: %w", &ShapeError{Feed: "standings", Reason: "x"}), KindShape},
		{"deadline", context.DeadlineExceeded, KindNetwork},
		{"econnrefused", syscall.ECONNREFUSED, KindNetwork},
		{"message timeout", errors.New("request timed out"), KindNetwork},
		{"unknown", errors.New("something else"), KindOther},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Errorf("%s: Classify = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Feed: "standings", StatusCode: 502, Body: "bad gateway"}
	want := "standings feed returned status 502: bad gateway"
	if err.Error() != want {
		t.Fatalf("Error = %q, want %q", err.Error(), want)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &TransportError{Feed: "schedule", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected errors.Is to reach the wrapped error")
	}
}
