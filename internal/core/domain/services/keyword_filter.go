package services

import (
	"strings"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
)

// KeywordFilter applies the operator allow/deny lists to the lowercase
// "{carrier} {service}" label of each quote.
//
// Negative keywords are checked first and reject on any match. Otherwise, when
// the positive list is non-empty, a quote is kept only if one positive keyword
// matches. Order is preserved and the input is never modified.
type KeywordFilter struct{}

// NewKeywordFilter creates a new KeywordFilter instance.
func NewKeywordFilter() KeywordFilter {
	return KeywordFilter{}
}

// Filter returns the quotes that survive the keyword settings.
func (f KeywordFilter) Filter(quotes quote.List, s settings.FilterSettings) quote.List {
	positive := lowered(s.PositiveKeywords())
	negative := lowered(s.NegativeKeywords())

	return quotes.Filter(func(q quote.Quote) bool {
		label := q.Label()
		if matchesAny(label, negative) {
			return false
		}
		if len(positive) > 0 {
			return matchesAny(label, positive)
		}
		return true
	})
}

func matchesAny(label string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}

func lowered(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = strings.ToLower(k)
	}
	return out
}
