package commands

import (
	"context"
)

// DeleteRouteRuleCommandHandler removes a stored route rule.
// Deleting the last stored rule brings the built-in defaults back into effect.
type DeleteRouteRuleCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewDeleteRouteRuleCommandHandler(uowFactory SettingsUoWFactory) DeleteRouteRuleCommandHandler {
	return DeleteRouteRuleCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the rule inside a transaction. An unknown id surfaces as
// errs.ObjectNotFoundError from the repository.
func (h DeleteRouteRuleCommandHandler) Handle(ctx context.Context, cmd DeleteRouteRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow SettingsUoW) error {
		return uow.RouteRuleRepository().Delete(ctx, cmd.RuleID())
	})
}
