// Package rating orchestrates the rate pipeline: provider fallback order, route
// and keyword filtering, and the "always show something" fallback to mock quotes.
// Price adjustment is applied by the caller.
package rating
