package queries

import (
	"cmp"
	"context"
	"slices"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetRouteRulesQueryHandler reads the route rules straight from the database.
// Built-in rules of every destination scope without a stored rule are appended
// with IsDefault set, so the listing shows the rules the filter applies.
type GetRouteRulesQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteRulesQueryHandler creates a handler for route rule listing.
func NewGetRouteRulesQueryHandler(db *gorm.DB) GetRouteRulesQueryHandler {
	return GetRouteRulesQueryHandler{db: db}
}

// Handle returns the rules ordered by destination (wildcard last) and position.
func (h GetRouteRulesQueryHandler) Handle(ctx context.Context, query GetRouteRulesQuery) (
	[]GetRouteRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]GetRouteRulesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination_country,
			carrier_keywords,
			service_keywords,
			position
		FROM route_rules
		ORDER BY destination_country = '*', destination_country, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rule GetRouteRulesQueryResponse
		var id uuid.UUID
		var carriers, services pq.StringArray

		if err = rows.Scan(&id, &rule.DestinationCountry, &carriers, &services, &rule.Position); err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rule.ID = ruleID
		rule.CarrierKeywords = append([]string{}, carriers...)
		rule.ServiceKeywords = append([]string{}, services...)
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return appendUncoveredDefaults(rules), nil
}

func appendUncoveredDefaults(stored []GetRouteRulesQueryResponse) []GetRouteRulesQueryResponse {
	covered := make(map[string]struct{}, len(stored))
	for _, r := range stored {
		covered[r.DestinationCountry] = struct{}{}
	}

	out := stored
	for _, r := range settings.DefaultRouteRules() {
		if _, ok := covered[r.DestinationCountry()]; ok {
			continue
		}
		out = append(out, GetRouteRulesQueryResponse{
			ID:                 r.ID(),
			DestinationCountry: r.DestinationCountry(),
			CarrierKeywords:    r.CarrierKeywords(),
			ServiceKeywords:    r.ServiceKeywords(),
			Position:           r.Position(),
			IsDefault:          true,
		})
	}

	slices.SortStableFunc(out, func(a, b GetRouteRulesQueryResponse) int {
		return cmp.Or(
			compareWildcardLast(a.DestinationCountry, b.DestinationCountry),
			cmp.Compare(a.DestinationCountry, b.DestinationCountry),
			cmp.Compare(a.Position, b.Position),
		)
	})
	return out
}

func compareWildcardLast(a, b string) int {
	aw, bw := a == settings.AnyDestination, b == settings.AnyDestination
	switch {
	case aw == bw:
		return 0
	case aw:
		return 1
	default:
		return -1
	}
}
