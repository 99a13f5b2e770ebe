// Package settingsrepo persists the single-row operator settings (keyword filters
// and price adjustment) in the global_settings key/value table.
package settingsrepo

import (
	"time"

	"shiprates/internal/core/domain/model/settings"

	"github.com/lib/pq"
)

// Keys of the global_settings rows.
const (
	CourierFilterKey   = "courier_filter"
	PriceAdjustmentKey = "price_adjustment"
)

// GlobalSettingDTO is one keyed settings row. Each key only uses its own columns.
type GlobalSettingDTO struct {
	Key              string         `gorm:"type:varchar(64);primaryKey"`
	PositiveKeywords pq.StringArray `gorm:"type:text[]"`
	NegativeKeywords pq.StringArray `gorm:"type:text[]"`
	Percentage       float64        `gorm:"type:double precision;not null;default:0"`
	Threshold        float64        `gorm:"type:double precision;not null;default:0"`
	MinimumPrice     float64        `gorm:"type:double precision;not null;default:0"`
	UpdatedAt        time.Time
}

// TableName overrides GORM's default "global_setting_dtos".
func (GlobalSettingDTO) TableName() string {
	return "global_settings"
}

func fromFilterSettings(s settings.FilterSettings) GlobalSettingDTO {
	return GlobalSettingDTO{
		Key:              CourierFilterKey,
		PositiveKeywords: pq.StringArray(s.PositiveKeywords()),
		NegativeKeywords: pq.StringArray(s.NegativeKeywords()),
	}
}

func toFilterSettings(dto GlobalSettingDTO) settings.FilterSettings {
	return settings.NewFilterSettings(dto.PositiveKeywords, dto.NegativeKeywords)
}

func fromPriceAdjustment(a settings.PriceAdjustment) GlobalSettingDTO {
	return GlobalSettingDTO{
		Key:          PriceAdjustmentKey,
		Percentage:   a.Percentage(),
		Threshold:    a.Threshold(),
		MinimumPrice: a.MinimumPrice(),
	}
}

func toPriceAdjustment(dto GlobalSettingDTO) (settings.PriceAdjustment, error) {
	return settings.NewPriceAdjustment(dto.Percentage, dto.Threshold, dto.MinimumPrice)
}
