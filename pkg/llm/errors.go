package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error classes for provider failures. Callers branch on class to decide
// retry (transient) vs fail (configuration).
var (
	// ErrAuthentication indicates a rejected or missing credential.
	ErrAuthentication = errors.New("authentication failed")

	// ErrModelNotFound indicates the provider does not know the model.
	ErrModelNotFound = errors.New("model not found")

	// ErrRateLimited indicates HTTP 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates the call exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrTransport indicates a network-level failure.
	ErrTransport = errors.New("transport error")

	// ErrProvider indicates a provider-side error (5xx or malformed reply).
	ErrProvider = errors.New("provider error")
)

// IsTransient reports whether the error is worth retrying at the worker
// boundary. Configuration errors (auth, unknown model) are not.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrProvider)
}

// classifyStatus maps an HTTP status code to an error class.
func classifyStatus(status int, body string) error {
	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: status %d: %s", ErrAuthentication, status, body)
	case status == 404:
		return fmt.Errorf("%w: status %d: %s", ErrModelNotFound, status, body)
	case status == 429:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case status >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrProvider, status, body)
	default:
		return fmt.Errorf("%w: unexpected status %d: %s", ErrProvider, status, body)
	}
}

// classifyTransport maps a transport-level error to an error class.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
