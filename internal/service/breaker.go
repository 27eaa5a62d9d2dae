package service

import (
	"sync"
	"time"
)

// CircuitBreaker gates outbound provider calls after repeated qualifying
// failures. It is safe for concurrent use; one instance is shared across all
// letter-generation requests for a given provider.
type CircuitBreaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openUntil time.Time
	now       func() time.Time
}

// NewCircuitBreaker returns a closed breaker. Non-positive arguments fall
// back to the defaults (5 failures, 60s cooldown).
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}
	return &CircuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Open reports whether the breaker currently rejects calls, and for how much
// longer.
func (b *CircuitBreaker) Open() (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	remaining := b.openUntil.Sub(b.now())
	if remaining > 0 {
		return true, remaining
	}
	return false, 0
}

// RecordFailure counts one qualifying failure and opens the breaker once the
// threshold is reached.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = b.now().Add(b.cooldown)
	}
}

// RecordSuccess closes the breaker and clears the failure count.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.openUntil = time.Time{}
}

// Status returns the current failure count and whether the breaker is open.
func (b *CircuitBreaker) Status() (failures int, open bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures, b.openUntil.Sub(b.now()) > 0
}
