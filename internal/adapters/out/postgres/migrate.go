package postgres

import (
	"context"

	"shiprates/internal/adapters/out/postgres/routerulerepo"
	"shiprates/internal/adapters/out/postgres/settingsrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the global_settings and route_rules tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&settingsrepo.GlobalSettingDTO{}, &routerulerepo.RouteRuleDTO{})
}
