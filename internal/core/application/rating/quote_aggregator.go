package rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
)

var (
	// ErrNoProviders is returned by NewQuoteAggregator for an empty chain.
	ErrNoProviders = errors.New("at least one rate provider is required")

	// ErrNoQuotes is returned when no provider produced any quote, including the mock.
	ErrNoQuotes = errors.New("no provider produced quotes")
)

// Provider outcomes reported to the Recorder.
const (
	OutcomeServed      = "served"
	OutcomeUnavailable = "unavailable"
	OutcomeRouteEmpty  = "route_empty"
	OutcomeFilterEmpty = "filter_empty"
)

// Recorder receives pipeline outcomes for operational diagnosis.
type Recorder interface {
	ProviderOutcome(provider, outcome string)
	QuotesServed(source quote.Source, unfiltered bool, count int)
}

// Result is the aggregator output: filtered, not price adjusted.
type Result struct {
	Quotes quote.List
	Source quote.Source
	// Unfiltered is set when every filtered set was empty and the last mock set
	// was returned without keyword filtering.
	Unfiltered bool
}

// QuoteAggregator walks a prioritized provider chain and returns the first
// non-empty filtered quote set.
//
// Per provider:
//   - a failure (error, timeout or panic) moves on to the next provider
//   - the route eligibility filter runs, an empty result moves on
//   - the keyword filter runs, an empty result moves on
//
// When every provider ends empty, the last mock set is returned without keyword
// filtering: route filtered, or raw if route rules removed every quote.
type QuoteAggregator struct {
	providers     []ports.RateProvider
	timeout       time.Duration
	routeFilter   services.RouteEligibilityFilter
	keywordFilter services.KeywordFilter
	recorder      Recorder
	logger        *slog.Logger
}

// NewQuoteAggregator creates an aggregator over providers in priority order.
// A zero timeout leaves provider calls bounded only by the caller's context.
// recorder may be nil.
func NewQuoteAggregator(providers []ports.RateProvider, timeout time.Duration, recorder Recorder,
	logger *slog.Logger) (*QuoteAggregator, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	for i, p := range providers {
		if p == nil {
			return nil, fmt.Errorf("provider %d is nil", i)
		}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &QuoteAggregator{
		providers:     append([]ports.RateProvider{}, providers...),
		timeout:       timeout,
		routeFilter:   services.NewRouteEligibilityFilter(),
		keywordFilter: services.NewKeywordFilter(),
		recorder:      recorder,
		logger:        logger.With("component", "quote_aggregator"),
	}, nil
}

// Aggregate runs the provider chain for req. Only an invalid request or a chain
// that produced no quote at all returns an error.
func (a *QuoteAggregator) Aggregate(ctx context.Context, req shipment.Request, keywords settings.FilterSettings,
	rules []*settings.RouteRule) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	destination := req.Destination().Country().Code()

	var (
		lastMockRaw    quote.List
		lastMockRouted quote.List
	)

	for _, p := range a.providers {
		log := a.logger.With("provider", p.Name())

		raw, err := a.call(ctx, p, req)
		if err != nil {
			a.recorder.ProviderOutcome(p.Name(), OutcomeUnavailable)
			log.WarnContext(ctx, "Provider unavailable, trying next", "error", err)
			continue
		}

		routed := a.routeFilter.Filter(raw, destination, rules)
		if p.Source() == quote.SourceMock {
			lastMockRaw, lastMockRouted = raw, routed
		}
		if routed.IsEmpty() {
			a.recorder.ProviderOutcome(p.Name(), OutcomeRouteEmpty)
			log.InfoContext(ctx, "Route eligibility removed every quote", "received", len(raw))
			continue
		}

		filtered := a.keywordFilter.Filter(routed, keywords)
		if filtered.IsEmpty() {
			a.recorder.ProviderOutcome(p.Name(), OutcomeFilterEmpty)
			log.InfoContext(ctx, "Keyword filter removed every quote", "eligible", len(routed))
			continue
		}

		a.recorder.ProviderOutcome(p.Name(), OutcomeServed)
		a.recorder.QuotesServed(p.Source(), false, len(filtered))
		log.InfoContext(ctx, "Serving quotes", "source", p.Source().String(), "count", len(filtered))
		return Result{Quotes: filtered, Source: p.Source()}, nil
	}

	fallback := lastMockRouted
	if fallback.IsEmpty() {
		fallback = lastMockRaw
	}
	if fallback.IsEmpty() {
		a.logger.ErrorContext(ctx, "No provider produced quotes")
		return Result{}, ErrNoQuotes
	}

	a.recorder.QuotesServed(quote.SourceMock, true, len(fallback))
	a.logger.WarnContext(ctx, "All filtered sets empty, serving unfiltered mock quotes",
		"count", len(fallback), "route_filtered", !lastMockRouted.IsEmpty())
	return Result{Quotes: fallback, Source: quote.SourceMock, Unfiltered: true}, nil
}

// call invokes one provider under the per-call timeout and turns panics into
// ErrProviderUnavailable.
func (a *QuoteAggregator) call(ctx context.Context, p ports.RateProvider, req shipment.Request) (quotes quote.List, err error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			quotes = nil
			err = fmt.Errorf("%w: provider panicked: %v", ports.ErrProviderUnavailable, r)
		}
	}()

	quotes, err = p.Quote(ctx, req)
	if err != nil {
		if !errors.Is(err, ports.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %w", ports.ErrProviderUnavailable, err)
		}
		return nil, err
	}
	return quotes, nil
}

type nopRecorder struct{}

func (nopRecorder) ProviderOutcome(string, string)        {}
func (nopRecorder) QuotesServed(quote.Source, bool, int) {}
