package commands

import (
	"context"
)

// UpdatePriceAdjustmentCommandHandler persists the operator price adjustment.
type UpdatePriceAdjustmentCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdatePriceAdjustmentCommandHandler(uowFactory SettingsUoWFactory) UpdatePriceAdjustmentCommandHandler {
	return UpdatePriceAdjustmentCommandHandler{uowFactory: uowFactory}
}

// Handle replaces the stored adjustment inside a transaction.
func (h UpdatePriceAdjustmentCommandHandler) Handle(ctx context.Context, cmd UpdatePriceAdjustmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow SettingsUoW) error {
		return uow.PriceAdjustmentRepository().Save(ctx, cmd.Adjustment())
	})
}
