package services

import (
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
)

// PriceAdjuster applies the operator price adjustment after aggregation: the
// percentage delta on quotes under the threshold, then the minimum price floor.
// Taxes and duties are left untouched. The result may be empty.
type PriceAdjuster struct{}

// NewPriceAdjuster creates a new PriceAdjuster instance.
func NewPriceAdjuster() PriceAdjuster {
	return PriceAdjuster{}
}

// Apply returns adjusted copies of the quotes that clear the floor.
func (p PriceAdjuster) Apply(quotes quote.List, adj settings.PriceAdjustment) quote.List {
	adjusted := quotes.Map(func(q quote.Quote) quote.Quote {
		return q.WithPrice(adj.Adjust(q.Price))
	})
	return adjusted.Filter(func(q quote.Quote) bool {
		return adj.Keeps(q.Price)
	})
}
