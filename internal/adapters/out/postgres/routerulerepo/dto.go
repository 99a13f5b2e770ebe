// Package routerulerepo persists operator route eligibility rules.
package routerulerepo

import (
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RouteRuleDTO is the route_rules row.
type RouteRuleDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DestinationCountry string         `gorm:"type:varchar(2);not null;index"`
	CarrierKeywords    pq.StringArray `gorm:"type:text[];not null"`
	ServiceKeywords    pq.StringArray `gorm:"type:text[]"`
	Position           int            `gorm:"type:int;not null;default:0"`
}

// TableName overrides GORM's default "route_rule_dtos".
func (RouteRuleDTO) TableName() string {
	return "route_rules"
}

func fromDomain(r *settings.RouteRule) RouteRuleDTO {
	return RouteRuleDTO{
		ID:                 r.ID().Bytes(),
		DestinationCountry: r.DestinationCountry(),
		CarrierKeywords:    pq.StringArray(r.CarrierKeywords()),
		ServiceKeywords:    pq.StringArray(r.ServiceKeywords()),
		Position:           r.Position(),
	}
}

func toDomain(dto RouteRuleDTO) (*settings.RouteRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return settings.RestoreRouteRule(id, dto.DestinationCountry, dto.CarrierKeywords, dto.ServiceKeywords, dto.Position)
}
