package commands

import (
	"context"
)

// UpdateFilterSettingsCommandHandler persists operator keyword settings.
type UpdateFilterSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateFilterSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateFilterSettingsCommandHandler {
	return UpdateFilterSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle replaces the stored keyword lists inside a transaction.
func (h UpdateFilterSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateFilterSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow SettingsUoW) error {
		return uow.FilterSettingsRepository().Save(ctx, cmd.Settings())
	})
}
