// Package resilience guards rate providers with a circuit breaker so a failing
// carrier API is skipped without waiting for its timeout on every request.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"

	"github.com/sony/gobreaker"
)

const (
	DefaultMaxRequests      uint32 = 1
	DefaultInterval                = 60 * time.Second
	DefaultOpenTimeout             = 30 * time.Second
	DefaultFailureThreshold uint32 = 5
)

// BreakerConfig tunes one provider's breaker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts; 0 never clears.
	Interval time.Duration
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// FailureThreshold consecutive failures trip the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the production settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      DefaultMaxRequests,
		Interval:         DefaultInterval,
		OpenTimeout:      DefaultOpenTimeout,
		FailureThreshold: DefaultFailureThreshold,
	}
}

var _ ports.RateProvider = (*BreakerProvider)(nil)

// BreakerProvider decorates a ports.RateProvider. An open breaker is reported
// as ports.ErrProviderUnavailable, so the aggregator moves on to the next source.
type BreakerProvider struct {
	next   ports.RateProvider
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewBreakerProvider wraps next with a breaker named after the provider.
func NewBreakerProvider(next ports.RateProvider, cfg BreakerConfig, logger *slog.Logger) *BreakerProvider {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "circuit_breaker", "provider", next.Name())

	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerProvider{
		next:   next,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

func (b *BreakerProvider) Name() string { return b.next.Name() }

func (b *BreakerProvider) Source() quote.Source { return b.next.Source() }

// State exposes the breaker state for logs and tests.
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerProvider) Quote(ctx context.Context, req shipment.Request) (quote.List, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Quote(ctx, req)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		b.logger.WarnContext(ctx, "Provider skipped by circuit breaker", "state", b.cb.State().String())
		return nil, fmt.Errorf("%w: circuit breaker %s for %s", ports.ErrProviderUnavailable, b.cb.State(), b.next.Name())
	}
	if err != nil {
		return nil, err
	}

	quotes, _ := result.(quote.List)
	return quotes, nil
}
