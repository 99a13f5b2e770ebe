package commands

import (
	"errors"

	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/pkg/guard"
)

var ErrUpdatePriceAdjustmentCommandIsNotConstructed = errors.New(
	"UpdatePriceAdjustmentCommand must be created via NewUpdatePriceAdjustmentCommand constructor",
)

// UpdatePriceAdjustmentCommand replaces the server-side price adjustment.
//
// Example:
//
//	cmd, err := NewUpdatePriceAdjustmentCommand(15, 100, 8)
//	if err != nil {
//	    return fmt.Errorf("invalid price adjustment: %w", err)
//	}
type UpdatePriceAdjustmentCommand struct { //nolint:recvcheck //using for validation
	adjustment settings.PriceAdjustment

	guard guard.ConstructorGuard
}

// NewUpdatePriceAdjustmentCommand validates percentage, threshold and minimum price.
func NewUpdatePriceAdjustmentCommand(percentage, threshold, minimumPrice float64) (UpdatePriceAdjustmentCommand, error) {
	adj, err := settings.NewPriceAdjustment(percentage, threshold, minimumPrice)
	if err != nil {
		return UpdatePriceAdjustmentCommand{}, err
	}

	return UpdatePriceAdjustmentCommand{
		adjustment: adj,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePriceAdjustmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriceAdjustmentCommandIsNotConstructed)
}

func (c UpdatePriceAdjustmentCommand) Adjustment() settings.PriceAdjustment {
	return c.adjustment
}
