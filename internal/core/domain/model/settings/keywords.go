package settings

import "strings"

// FilterSettings holds the operator allow/deny keyword lists.
// Keywords are trimmed, empties are dropped and matching is case-insensitive.
type FilterSettings struct {
	positive []string
	negative []string
}

// NewFilterSettings normalizes both keyword lists. It never fails: an empty list
// simply disables that side of the filter.
func NewFilterSettings(positive, negative []string) FilterSettings {
	return FilterSettings{
		positive: NormalizeKeywords(positive),
		negative: NormalizeKeywords(negative),
	}
}

// EmptyFilterSettings keeps every quote.
func EmptyFilterSettings() FilterSettings {
	return FilterSettings{positive: []string{}, negative: []string{}}
}

// PositiveKeywords returns a copy of the allow list.
func (f FilterSettings) PositiveKeywords() []string {
	return append([]string{}, f.positive...)
}

// NegativeKeywords returns a copy of the deny list.
func (f FilterSettings) NegativeKeywords() []string {
	return append([]string{}, f.negative...)
}

// NormalizeKeywords trims every entry and drops empty ones, keeping order.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ParseKeywords splits a comma-separated admin input into normalized keywords.
//
//	ParseKeywords(" fedex, ,usps ") // ["fedex", "usps"]
func ParseKeywords(s string) []string {
	return NormalizeKeywords(strings.Split(s, ","))
}
