package ports

import (
	"context"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"
)

// FilterSettingsRepository stores the single operator keyword configuration.
type FilterSettingsRepository interface {
	// Get returns the stored keywords, or empty settings when none were saved.
	Get(ctx context.Context) (settings.FilterSettings, error)

	// Save replaces the stored keywords.
	Save(ctx context.Context, s settings.FilterSettings) error
}

// PriceAdjustmentRepository stores the single operator price adjustment.
type PriceAdjustmentRepository interface {
	// Get returns the stored adjustment, or settings.NoPriceAdjustment when none was saved.
	Get(ctx context.Context) (settings.PriceAdjustment, error)

	// Save replaces the stored adjustment.
	Save(ctx context.Context, a settings.PriceAdjustment) error
}

// RouteRuleRepository stores operator route eligibility rules.
// An empty store means the built-in defaults apply.
type RouteRuleRepository interface {
	// List returns every stored rule ordered by destination and position.
	List(ctx context.Context) ([]*settings.RouteRule, error)

	// Add persists a new rule.
	Add(ctx context.Context, rule *settings.RouteRule) error

	// Delete removes a rule. Returns errs.ObjectNotFoundError when the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error
}
