// Package ports defines the contracts between the rating core and infrastructure:
// outbound rate providers and the settings repositories behind a unit of work.
package ports

import (
	"context"
	"errors"
	"fmt"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
)

// ErrProviderUnavailable is the root of every provider failure. The aggregator
// treats any error wrapping it as "no quotes from this source".
var ErrProviderUnavailable = errors.New("rate provider unavailable")

// Provider failure classes. All of them wrap ErrProviderUnavailable.
var (
	ErrConfigurationMissing = fmt.Errorf("%w: configuration missing", ErrProviderUnavailable)
	ErrTransportFailure     = fmt.Errorf("%w: transport failure", ErrProviderUnavailable)
	ErrSchemaMapping        = fmt.Errorf("%w: schema mapping failure", ErrProviderUnavailable)
)

// RateProvider is one source of quotes in the aggregation chain.
type RateProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Source labels the quotes this provider produces.
	Source() quote.Source

	// Quote returns the provider's unfiltered quotes for the request.
	// Failures must wrap ErrProviderUnavailable; an empty list is not a failure.
	Quote(ctx context.Context, req shipment.Request) (quote.List, error)
}
