package routerulerepo

import (
	"context"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRuleRepository implements ports.RouteRuleRepository using GORM.
type GormRouteRuleRepository struct {
	db *gorm.DB
}

// NewGormRouteRuleRepository creates a new GORM route rule repository.
func NewGormRouteRuleRepository(db *gorm.DB) *GormRouteRuleRepository {
	return &GormRouteRuleRepository{db: db}
}

// List returns all stored rules ordered by destination and position.
func (r *GormRouteRuleRepository) List(ctx context.Context) ([]*settings.RouteRule, error) {
	var dtos []RouteRuleDTO
	if err := r.db.WithContext(ctx).Order("destination_country").Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]*settings.RouteRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Add saves a new rule.
func (r *GormRouteRuleRepository) Add(ctx context.Context, rule *settings.RouteRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes a rule by id.
func (r *GormRouteRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteRuleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("routeRule", id.String())
	}
	return nil
}
