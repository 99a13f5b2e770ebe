package services

import (
	"slices"
	"strings"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
)

// RouteEligibilityFilter drops quotes for carrier services that are not offered
// on the shipment's destination.
//
// Rule selection, after stored rules are completed with the built-in rules of
// every scope they leave uncovered:
//   - rules whose destination equals the destination country, when any exist
//   - otherwise the wildcard rules
//
// Per quote, the first rule (by position) whose carrier keyword occurs in the
// carrier name decides. A quote no rule matches is dropped. The filter is
// idempotent and has no notion of fallback: it may return an empty list.
type RouteEligibilityFilter struct{}

// NewRouteEligibilityFilter creates a new RouteEligibilityFilter instance.
func NewRouteEligibilityFilter() RouteEligibilityFilter {
	return RouteEligibilityFilter{}
}

// Filter applies rules to quotes for the given destination country.
// A nil or empty rule set selects settings.DefaultRouteRules.
func (f RouteEligibilityFilter) Filter(quotes quote.List, destinationCountry string, rules []*settings.RouteRule) quote.List {
	selected := selectRules(destinationCountry, settings.WithDefaultScopes(rules))

	return quotes.Filter(func(q quote.Quote) bool {
		for _, r := range selected {
			if r.MatchesCarrier(q.Carrier) {
				return r.AllowsService(q.Service)
			}
		}
		return false
	})
}

func selectRules(destinationCountry string, rules []*settings.RouteRule) []*settings.RouteRule {
	destinationCountry = strings.ToUpper(strings.TrimSpace(destinationCountry))

	var exact, wildcard []*settings.RouteRule
	for _, r := range rules {
		if r.Validate() != nil {
			continue
		}
		switch {
		case r.IsWildcard():
			wildcard = append(wildcard, r)
		case r.DestinationCountry() == destinationCountry:
			exact = append(exact, r)
		}
	}

	selected := wildcard
	if len(exact) > 0 {
		selected = exact
	}
	slices.SortStableFunc(selected, func(a, b *settings.RouteRule) int {
		return a.Position() - b.Position()
	})
	return selected
}
