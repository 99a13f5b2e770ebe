package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for settings writes.
// Repositories obtained from it join the transaction started by Begin;
// without Begin they run directly against the database.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is open; callers defer it and ignore the result.
	Rollback(ctx context.Context) error

	FilterSettingsRepository() FilterSettingsRepository
	PriceAdjustmentRepository() PriceAdjustmentRepository
	RouteRuleRepository() RouteRuleRepository
}
