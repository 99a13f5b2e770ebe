// Package services contains the stateless domain services of the rate pipeline.
//
// The package includes:
//   - RouteEligibilityFilter: drops carrier services not offered on a destination
//   - KeywordFilter: applies the operator allow/deny keyword lists
//   - PriceAdjuster: applies the operator percentage delta and minimum price floor
//   - MockRateSynthesizer: builds an approximate quote set from a fixed rate table
//
// Every service is a pure transformation over quote.List; none of them keeps
// state between calls, so a single value is safe to share across requests.
package services
