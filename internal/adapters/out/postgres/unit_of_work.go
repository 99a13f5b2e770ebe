// Package postgres provides the GORM-based Unit of Work over the settings
// repositories.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.RouteRuleRepository().Add(ctx, rule); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction and must not be shared
// between goroutines. Repositories obtained without Begin run directly on the pool.
package postgres

import (
	"context"

	"shiprates/internal/adapters/out/postgres/routerulerepo"
	"shiprates/internal/adapters/out/postgres/settingsrepo"
	"shiprates/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory implements ports.UnitOfWorkFactory.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the connection pool.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

// Commit commits the open transaction.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback aborts the open transaction.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *GormUnitOfWork) FilterSettingsRepository() ports.FilterSettingsRepository {
	return settingsrepo.NewGormFilterSettingsRepository(u.conn())
}

func (u *GormUnitOfWork) PriceAdjustmentRepository() ports.PriceAdjustmentRepository {
	return settingsrepo.NewGormPriceAdjustmentRepository(u.conn())
}

func (u *GormUnitOfWork) RouteRuleRepository() ports.RouteRuleRepository {
	return routerulerepo.NewGormRouteRuleRepository(u.conn())
}

func (u *GormUnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
