// Package commands contains the operator write operations on rating settings.
// Every handler validates its command, opens a unit of work, persists and commits.
package commands

import (
	"context"

	"shiprates/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SettingsUoW manages transactions over the settings repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.RouteRuleRepository().Add(ctx, rule)
	//   err = uow.Commit(ctx)
	SettingsUoW interface {
		TxManager
		FilterSettingsRepository() ports.FilterSettingsRepository
		PriceAdjustmentRepository() ports.PriceAdjustmentRepository
		RouteRuleRepository() ports.RouteRuleRepository
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)

// inTransaction runs fn inside a fresh unit of work and commits on success.
func inTransaction(ctx context.Context, f SettingsUoWFactory, fn func(uow SettingsUoW) error) error {
	uow := f.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
