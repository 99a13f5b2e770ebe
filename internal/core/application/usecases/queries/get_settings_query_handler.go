package queries

import (
	"context"

	"shiprates/internal/core/ports"
)

// GetFilterSettingsQueryHandler returns the stored keyword lists.
type GetFilterSettingsQueryHandler struct {
	repo ports.FilterSettingsRepository
}

func NewGetFilterSettingsQueryHandler(repo ports.FilterSettingsRepository) GetFilterSettingsQueryHandler {
	return GetFilterSettingsQueryHandler{repo: repo}
}

func (h GetFilterSettingsQueryHandler) Handle(ctx context.Context, query GetFilterSettingsQuery) (
	GetFilterSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFilterSettingsQueryResponse{}, err
	}

	s, err := h.repo.Get(ctx)
	if err != nil {
		return GetFilterSettingsQueryResponse{}, err
	}

	return GetFilterSettingsQueryResponse{
		PositiveKeywords: s.PositiveKeywords(),
		NegativeKeywords: s.NegativeKeywords(),
	}, nil
}

// GetPriceAdjustmentQueryHandler returns the stored price adjustment.
type GetPriceAdjustmentQueryHandler struct {
	repo ports.PriceAdjustmentRepository
}

func NewGetPriceAdjustmentQueryHandler(repo ports.PriceAdjustmentRepository) GetPriceAdjustmentQueryHandler {
	return GetPriceAdjustmentQueryHandler{repo: repo}
}

func (h GetPriceAdjustmentQueryHandler) Handle(ctx context.Context, query GetPriceAdjustmentQuery) (
	GetPriceAdjustmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceAdjustmentQueryResponse{}, err
	}

	a, err := h.repo.Get(ctx)
	if err != nil {
		return GetPriceAdjustmentQueryResponse{}, err
	}

	return GetPriceAdjustmentQueryResponse{
		Percentage:   a.Percentage(),
		Threshold:    a.Threshold(),
		MinimumPrice: a.MinimumPrice(),
	}, nil
}
