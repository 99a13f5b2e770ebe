package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/guard"
)

var ErrGetRouteRulesQueryIsNotConstructed = errors.New(
	"GetRouteRulesQuery must be created via NewGetRouteRulesQuery constructor",
)

// GetRouteRulesQuery lists the route eligibility rules in effect.
type GetRouteRulesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRouteRulesQuery() GetRouteRulesQuery {
	return GetRouteRulesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRouteRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteRulesQueryIsNotConstructed)
}

// GetRouteRulesQueryResponse is one rule in the read model. IsDefault marks the
// built-in rules returned while no rule is stored.
type GetRouteRulesQueryResponse struct {
	ID                 kernel.UUID
	DestinationCountry string
	CarrierKeywords    []string
	ServiceKeywords    []string
	Position           int
	IsDefault          bool
}
