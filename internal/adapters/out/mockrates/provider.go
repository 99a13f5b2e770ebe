// Package mockrates exposes the mock rate synthesizer as the last provider of
// the chain. It never fails.
package mockrates

import (
	"context"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
)

var _ ports.RateProvider = Provider{}

// Provider implements ports.RateProvider on top of services.MockRateSynthesizer.
type Provider struct {
	synth services.MockRateSynthesizer
}

func NewProvider(synth services.MockRateSynthesizer) Provider {
	return Provider{synth: synth}
}

func (Provider) Name() string { return "mock" }

func (Provider) Source() quote.Source { return quote.SourceMock }

func (p Provider) Quote(_ context.Context, req shipment.Request) (quote.List, error) {
	return p.synth.Synthesize(req), nil
}
