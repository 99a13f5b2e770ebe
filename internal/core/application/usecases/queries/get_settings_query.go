package queries

import (
	"errors"

	"shiprates/internal/pkg/guard"
)

var (
	ErrGetFilterSettingsQueryIsNotConstructed = errors.New(
		"GetFilterSettingsQuery must be created via NewGetFilterSettingsQuery constructor",
	)
	ErrGetPriceAdjustmentQueryIsNotConstructed = errors.New(
		"GetPriceAdjustmentQuery must be created via NewGetPriceAdjustmentQuery constructor",
	)
)

// GetFilterSettingsQuery reads the operator keyword lists.
type GetFilterSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFilterSettingsQuery() GetFilterSettingsQuery {
	return GetFilterSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFilterSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetFilterSettingsQueryIsNotConstructed)
}

// GetFilterSettingsQueryResponse is the keyword read model.
type GetFilterSettingsQueryResponse struct {
	PositiveKeywords []string
	NegativeKeywords []string
}

// GetPriceAdjustmentQuery reads the operator price adjustment.
type GetPriceAdjustmentQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPriceAdjustmentQuery() GetPriceAdjustmentQuery {
	return GetPriceAdjustmentQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPriceAdjustmentQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceAdjustmentQueryIsNotConstructed)
}

// GetPriceAdjustmentQueryResponse is the price adjustment read model.
type GetPriceAdjustmentQueryResponse struct {
	Percentage   float64
	Threshold    float64
	MinimumPrice float64
}
