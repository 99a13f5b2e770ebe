package settings

type ruleSeed struct {
	destination string
	carriers    []string
	services    []string
}

var defaultRuleSeeds = []ruleSeed{
	{"US", []string{"fedex"}, []string{"priority", "priority express"}},
	{"US", []string{"usps"}, []string{"priority", "ground"}},
	{"US", []string{"cap", "china post"}, nil},
	{AnyDestination, []string{"cap", "china post"}, nil},
	{AnyDestination, []string{"fedex"}, nil},
}

// DefaultRouteRules returns the built-in rule set. Each destination scope keeps
// these rules until an operator stores a rule for it (see WithDefaultScopes).
// US destinations keep FedEx priority tiers, USPS priority and ground and CAP/China Post;
// every other destination keeps CAP/China Post and FedEx.
func DefaultRouteRules() []*RouteRule {
	rules := make([]*RouteRule, 0, len(defaultRuleSeeds))
	for i, s := range defaultRuleSeeds {
		r, err := NewRouteRule(s.destination, s.carriers, s.services, i)
		if err != nil {
			panic(err)
		}
		rules = append(rules, r)
	}
	return rules
}

// WithDefaultScopes completes stored rules with the built-in rules of every
// destination scope (a country code or AnyDestination) the stored set does not
// cover. Stored rules own their scope entirely; an empty stored set yields
// exactly DefaultRouteRules.
func WithDefaultScopes(stored []*RouteRule) []*RouteRule {
	covered := make(map[string]struct{}, len(stored))
	merged := make([]*RouteRule, 0, len(stored)+len(defaultRuleSeeds))
	for _, r := range stored {
		if r.Validate() != nil {
			continue
		}
		covered[r.DestinationCountry()] = struct{}{}
		merged = append(merged, r)
	}

	for _, r := range DefaultRouteRules() {
		if _, ok := covered[r.DestinationCountry()]; !ok {
			merged = append(merged, r)
		}
	}
	return merged
}
