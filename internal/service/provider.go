// Package service holds the external generation providers and the resilience
// layer (retry, fallback model, circuit breaker) around them.
package service

import (
	"context"
	"errors"
	"fmt"
)

// Provider is the abstract text-generation capability. Implementations must
// return a *ProviderError for provider-side failures so the caller can read
// the HTTP status.
type Provider interface {
	Name() string
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// ProviderError is a failed provider call. Status carries the HTTP status
// code when one was observed, 0 for transport-level or response-shape
// failures.
type ProviderError struct {
	Status  int
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StatusOf extracts the provider status from err, 0 when err carries none.
func StatusOf(err error) int {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Status
	}
	return 0
}

// IsTransient reports whether err is a qualifying failure: rate-limited (429)
// or unavailable (503). Only these are retried and only these feed the
// circuit breaker.
func IsTransient(err error) bool {
	status := StatusOf(err)
	return status == 429 || status == 503
}
