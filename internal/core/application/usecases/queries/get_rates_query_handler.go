package queries

import (
	"context"
	"log/slog"

	"shiprates/internal/core/application/rating"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
)

// QuoteAggregator runs the provider chain. Implemented by *rating.QuoteAggregator.
type QuoteAggregator interface {
	Aggregate(ctx context.Context, req shipment.Request, keywords settings.FilterSettings,
		rules []*settings.RouteRule) (rating.Result, error)
}

// SettingsReaders groups the repositories read on every rate request.
type SettingsReaders struct {
	Filters    ports.FilterSettingsRepository
	Prices     ports.PriceAdjustmentRepository
	RouteRules ports.RouteRuleRepository
}

// GetRatesQueryHandler is the customer rate entry point.
//
// Steps:
//   - read keyword settings, route rules and price adjustment (failures degrade to defaults)
//   - aggregate filtered quotes across the provider chain
//   - on aggregator failure, synthesize the reference shipment's default set
//   - apply the price adjustment and minimum floor
type GetRatesQueryHandler struct {
	aggregator QuoteAggregator
	readers    SettingsReaders
	synth      services.MockRateSynthesizer
	routes     services.RouteEligibilityFilter
	adjuster   services.PriceAdjuster
	logger     *slog.Logger
}

func NewGetRatesQueryHandler(aggregator QuoteAggregator, readers SettingsReaders,
	synth services.MockRateSynthesizer, logger *slog.Logger) GetRatesQueryHandler {
	return GetRatesQueryHandler{
		aggregator: aggregator,
		readers:    readers,
		synth:      synth,
		routes:     services.NewRouteEligibilityFilter(),
		adjuster:   services.NewPriceAdjuster(),
		logger:     logger.With("component", "get_rates"),
	}
}

// Handle returns priced quotes. Only an unconstructed query is an error; every
// other failure is logged and answered with fallback quotes.
func (h GetRatesQueryHandler) Handle(ctx context.Context, query GetRatesQuery) (GetRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRatesQueryResponse{}, err
	}
	req := query.Request()

	keywords := h.loadKeywords(ctx)
	rules := h.loadRouteRules(ctx)
	adjustment := h.loadPriceAdjustment(ctx)

	var (
		quotes quote.List
		source quote.Source
	)
	result, err := h.aggregator.Aggregate(ctx, req, keywords, rules)
	if err != nil {
		h.logger.ErrorContext(ctx, "Aggregation failed, serving default mock quotes", "error", err)
		quotes, source = h.defaultQuotes(), quote.SourceDefault
	} else {
		quotes, source = result.Quotes, result.Source
	}

	priced := h.adjuster.Apply(quotes, adjustment)
	if priced.IsEmpty() && !quotes.IsEmpty() {
		h.logger.WarnContext(ctx, "Price floor removed every quote",
			"minimum_price", adjustment.MinimumPrice(), "received", len(quotes))
	}

	return GetRatesQueryResponse{Quotes: priced, Source: source}, nil
}

// defaultQuotes is the reference shipment (5 kg, 30×20×15 cm, US→US) priced by the
// synthesizer and filtered by the built-in route rules.
func (h GetRatesQueryHandler) defaultQuotes() quote.List {
	req := ReferenceShipment()
	return h.routes.Filter(h.synth.Synthesize(req), req.Destination().Country().Code(), nil)
}

func (h GetRatesQueryHandler) loadKeywords(ctx context.Context) settings.FilterSettings {
	if h.readers.Filters == nil {
		return settings.EmptyFilterSettings()
	}
	s, err := h.readers.Filters.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Could not read keyword settings, using none", "error", err)
		return settings.EmptyFilterSettings()
	}
	return s
}

func (h GetRatesQueryHandler) loadRouteRules(ctx context.Context) []*settings.RouteRule {
	if h.readers.RouteRules == nil {
		return nil
	}
	rules, err := h.readers.RouteRules.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Could not read route rules, using defaults", "error", err)
		return nil
	}
	return rules
}

func (h GetRatesQueryHandler) loadPriceAdjustment(ctx context.Context) settings.PriceAdjustment {
	if h.readers.Prices == nil {
		return settings.NoPriceAdjustment()
	}
	a, err := h.readers.Prices.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Could not read price adjustment, using none", "error", err)
		return settings.NoPriceAdjustment()
	}
	return a
}
