package settingsrepo

import (
	"context"
	"errors"

	"shiprates/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFilterSettingsRepository implements ports.FilterSettingsRepository.
type GormFilterSettingsRepository struct {
	db *gorm.DB
}

func NewGormFilterSettingsRepository(db *gorm.DB) *GormFilterSettingsRepository {
	return &GormFilterSettingsRepository{db: db}
}

// Get returns the stored keywords, or empty settings when the row is absent.
func (r *GormFilterSettingsRepository) Get(ctx context.Context) (settings.FilterSettings, error) {
	dto, found, err := load(ctx, r.db, CourierFilterKey)
	if err != nil {
		return settings.FilterSettings{}, err
	}
	if !found {
		return settings.EmptyFilterSettings(), nil
	}
	return toFilterSettings(dto), nil
}

// Save upserts the courier_filter row.
func (r *GormFilterSettingsRepository) Save(ctx context.Context, s settings.FilterSettings) error {
	dto := fromFilterSettings(s)
	return upsert(ctx, r.db, &dto, "positive_keywords", "negative_keywords")
}

// GormPriceAdjustmentRepository implements ports.PriceAdjustmentRepository.
type GormPriceAdjustmentRepository struct {
	db *gorm.DB
}

func NewGormPriceAdjustmentRepository(db *gorm.DB) *GormPriceAdjustmentRepository {
	return &GormPriceAdjustmentRepository{db: db}
}

// Get returns the stored adjustment, or no adjustment when the row is absent.
func (r *GormPriceAdjustmentRepository) Get(ctx context.Context) (settings.PriceAdjustment, error) {
	dto, found, err := load(ctx, r.db, PriceAdjustmentKey)
	if err != nil {
		return settings.PriceAdjustment{}, err
	}
	if !found {
		return settings.NoPriceAdjustment(), nil
	}
	return toPriceAdjustment(dto)
}

// Save upserts the price_adjustment row.
func (r *GormPriceAdjustmentRepository) Save(ctx context.Context, a settings.PriceAdjustment) error {
	dto := fromPriceAdjustment(a)
	return upsert(ctx, r.db, &dto, "percentage", "threshold", "minimum_price")
}

func load(ctx context.Context, db *gorm.DB, key string) (GlobalSettingDTO, bool, error) {
	var dto GlobalSettingDTO
	if err := db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GlobalSettingDTO{}, false, nil
		}
		return GlobalSettingDTO{}, false, err
	}
	return dto, true, nil
}

func upsert(ctx context.Context, db *gorm.DB, dto *GlobalSettingDTO, columns ...string) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(dto).Error
}
