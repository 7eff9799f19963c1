package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Failure kinds reported in refresh status payloads and metrics labels.
const (
	KindNetwork = "network"
	KindHTTP    = "http"
	KindShape   = "shape"
	KindOther   = "other"
)

// TransportError wraps a failure to reach the upstream at all: dialing,
// TLS, timeouts, or a broken response body.
type TransportError struct {
	Feed string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s feed transport: %v", e.Feed, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx upstream response. Body holds a short
// excerpt of the response for diagnostics.
type StatusError struct {
	Feed       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s feed returned status %d", e.Feed, e.StatusCode)
	}
	return fmt.Sprintf("%s feed returned status %d: %s", e.Feed, e.StatusCode, e.Body)
}

// ShapeError reports a response that arrived intact but did not contain
// the structures normalization requires. Shape failures are not retried;
// a malformed document will not improve on a second request.
type ShapeError struct {
	Feed   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s feed shape: %s", e.Feed, e.Reason)
}

// Classify maps an error to one of the failure kinds.
func Classify(err error) string {
	if err == nil {
		return KindOther
	}
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return KindShape
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return KindHTTP
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return KindNetwork
	}
	if isNetworkError(err) {
		return KindNetwork
	}
	return KindOther
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{
		"connection reset",
		"connection refused",
		"no such host",
		"timeout",
		"timed out",
		"abort",
		"broken pipe",
		"eof",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
