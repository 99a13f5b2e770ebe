package commands

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/pkg/guard"
)

var ErrAddRouteRuleCommandIsNotConstructed = errors.New(
	"AddRouteRuleCommand must be created via NewAddRouteRuleCommand constructor",
)

// AddRouteRuleCommand stores a new route eligibility rule. The rule identifier is
// generated here so callers can return it without reading back.
//
// Example:
//
//	cmd, err := NewAddRouteRuleCommand("CA", []string{"dhl"}, []string{"express"}, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid route rule: %w", err)
//	}
//	fmt.Printf("Created rule %s", cmd.RuleID())
type AddRouteRuleCommand struct { //nolint:recvcheck //using for validation
	rule *settings.RouteRule

	guard guard.ConstructorGuard
}

// NewAddRouteRuleCommand validates the rule fields.
func NewAddRouteRuleCommand(destinationCountry string, carrierKeywords, serviceKeywords []string,
	position int) (AddRouteRuleCommand, error) {
	rule, err := settings.NewRouteRule(destinationCountry, carrierKeywords, serviceKeywords, position)
	if err != nil {
		return AddRouteRuleCommand{}, err
	}

	return AddRouteRuleCommand{
		rule:  rule,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRouteRuleCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteRuleCommandIsNotConstructed)
}

func (c AddRouteRuleCommand) RuleID() kernel.UUID {
	return c.rule.ID()
}

func (c AddRouteRuleCommand) Rule() *settings.RouteRule {
	return c.rule
}
