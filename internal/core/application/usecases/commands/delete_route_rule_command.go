package commands

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/guard"
)

var ErrDeleteRouteRuleCommandIsNotConstructed = errors.New(
	"DeleteRouteRuleCommand must be created via NewDeleteRouteRuleCommand constructor",
)

// DeleteRouteRuleCommand removes a stored route rule by identifier.
type DeleteRouteRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRouteRuleCommand(ruleID kernel.UUID) (DeleteRouteRuleCommand, error) {
	if err := ruleID.Validate(); err != nil {
		return DeleteRouteRuleCommand{}, err
	}

	return DeleteRouteRuleCommand{
		ruleID: ruleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteRuleCommandIsNotConstructed)
}

func (c DeleteRouteRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}
