package commands

import (
	"context"
)

// AddRouteRuleCommandHandler persists a new route eligibility rule.
// Once any rule is stored, the stored set replaces the built-in defaults.
type AddRouteRuleCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewAddRouteRuleCommandHandler(uowFactory SettingsUoWFactory) AddRouteRuleCommandHandler {
	return AddRouteRuleCommandHandler{uowFactory: uowFactory}
}

// Handle adds the rule inside a transaction.
func (h AddRouteRuleCommandHandler) Handle(ctx context.Context, cmd AddRouteRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow SettingsUoW) error {
		return uow.RouteRuleRepository().Add(ctx, cmd.Rule())
	})
}
