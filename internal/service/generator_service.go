package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Letter content provenance, persisted alongside the generated document.
const (
	SourceTemplate = "template"
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// AttemptError records one failed provider attempt. The fallback-model
// attempt is numbered maxRetries+1.
type AttemptError struct {
	Attempt int    `json:"attempt"`
	Model   string `json:"model"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// GenerationResult is the outcome of one generation request. It is built once
// and never mutated afterwards.
type GenerationResult struct {
	Text      string         `json:"text"`
	Source    string         `json:"source"`
	ModelUsed string         `json:"model_used,omitempty"`
	Attempts  int            `json:"attempts"`
	Errors    []AttemptError `json:"errors"`
}

// CircuitOpenError is returned without calling the provider while the breaker
// cooldown is running.
type CircuitOpenError struct {
	RetryAfter time.Duration
}

func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("circuit open, retry after %dms", e.RetryAfter.Milliseconds())
}

// GenerationError is the terminal failure after primary retries and the
// fallback attempt are exhausted. It carries every failed attempt so callers
// can persist generation provenance.
type GenerationError struct {
	Errors   []AttemptError
	Failures int
	Open     bool
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts", len(e.Errors))
}

// GeneratorServiceInterface is what the usecase layer consumes.
type GeneratorServiceInterface interface {
	Generate(ctx context.Context, prompt string) (*GenerationResult, error)
}

// GeneratorOptions tunes the retry/fallback orchestration. Zero values fall
// back to the documented defaults.
type GeneratorOptions struct {
	PrimaryModel  string
	FallbackModel string
	MaxRetries    int
	BaseDelay     time.Duration
}

// GeneratorService wraps a Provider with bounded retries, exponential backoff
// with jitter, a single fallback-model attempt and a shared circuit breaker.
// Each request is a sequential state machine; the breaker is the only state
// shared across requests.
type GeneratorService struct {
	provider      Provider
	breaker       *CircuitBreaker
	primaryModel  string
	fallbackModel string
	maxRetries    int
	baseDelay     time.Duration
}

func NewGeneratorService(provider Provider, breaker *CircuitBreaker, opts GeneratorOptions) *GeneratorService {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if breaker == nil {
		breaker = NewCircuitBreaker(0, 0)
	}
	return &GeneratorService{
		provider:      provider,
		breaker:       breaker,
		primaryModel:  opts.PrimaryModel,
		fallbackModel: opts.FallbackModel,
		maxRetries:    opts.MaxRetries,
		baseDelay:     opts.BaseDelay,
	}
}

// Breaker exposes the shared breaker, mainly for status reporting.
func (s *GeneratorService) Breaker() *CircuitBreaker {
	return s.breaker
}

// Generate runs the full retry/fallback sequence for one prompt. The primary
// model is kept verbatim across all retries; only 429/503 failures are
// retried, anything else aborts the loop and skips straight to the fallback
// model.
func (s *GeneratorService) Generate(ctx context.Context, prompt string) (*GenerationResult, error) {
	if open, remaining := s.breaker.Open(); open {
		return nil, &CircuitOpenError{RetryAfter: remaining}
	}

	var errs []AttemptError
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		text, err := s.attempt(ctx, s.primaryModel, prompt)
		if err == nil {
			s.breaker.RecordSuccess()
			return &GenerationResult{
				Text:      text,
				Source:    SourceAI,
				ModelUsed: s.primaryModel,
				Attempts:  attempt + 1,
				Errors:    errs,
			}, nil
		}

		errs = append(errs, newAttemptError(attempt+1, s.primaryModel, err))
		if !IsTransient(err) {
			break
		}
		s.breaker.RecordFailure()
		if attempt+1 < s.maxRetries {
			if werr := s.backoff(ctx, attempt); werr != nil {
				return nil, werr
			}
		}
	}

	if s.fallbackModel != "" && s.fallbackModel != s.primaryModel {
		text, err := s.attempt(ctx, s.fallbackModel, prompt)
		if err == nil {
			s.breaker.RecordSuccess()
			return &GenerationResult{
				Text:      text,
				Source:    SourceAI,
				ModelUsed: s.fallbackModel,
				Attempts:  s.maxRetries + 1,
				Errors:    errs,
			}, nil
		}
		errs = append(errs, newAttemptError(s.maxRetries+1, s.fallbackModel, err))
		if IsTransient(err) {
			s.breaker.RecordFailure()
		}
	}

	failures, open := s.breaker.Status()
	return nil, &GenerationError{Errors: errs, Failures: failures, Open: open}
}

// attempt performs one provider call. A blank response counts as a failure so
// the caller never persists an empty letter.
func (s *GeneratorService) attempt(ctx context.Context, model, prompt string) (string, error) {
	text, err := s.provider.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ProviderError{Message: "empty response from provider"}
	}
	return trimmed, nil
}

// backoff sleeps baseDelay * 2^attempt plus up to 100ms of jitter, honoring
// context cancellation.
func (s *GeneratorService) backoff(ctx context.Context, attempt int) error {
	delay := s.baseDelay*time.Duration(1<<attempt) + time.Duration(rand.Intn(100))*time.Millisecond
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("generation canceled during backoff: %w", ctx.Err())
	}
}

func newAttemptError(attempt int, model string, err error) AttemptError {
	return AttemptError{
		Attempt: attempt,
		Model:   model,
		Message: err.Error(),
		Status:  StatusOf(err),
	}
}
