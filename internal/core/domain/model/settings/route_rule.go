package settings

import (
	"errors"
	"fmt"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// AnyDestination is the wildcard destination used when no country-specific rule exists.
const AnyDestination = "*"

// ErrRouteRuleIsNotConstructed is returned when a zero-value RouteRule is used.
var ErrRouteRuleIsNotConstructed = errors.New("RouteRule must be created via NewRouteRule constructor")

// RouteRule states which carrier services are offered on a destination.
//
// A rule matches a quote when any carrier keyword is a substring of the
// lowercased carrier name. An empty service keyword list allows every service
// of that carrier. Rules are evaluated in Position order; the first match decides.
type RouteRule struct {
	id                 kernel.UUID
	destinationCountry string
	carrierKeywords    []string
	serviceKeywords    []string
	position           int
	guard              guard.ConstructorGuard
}

// NewRouteRule creates a rule with a fresh identifier.
//
// Parameters:
//   - destinationCountry: ISO alpha-2 code or AnyDestination
//   - carrierKeywords: at least one carrier name fragment
//   - serviceKeywords: service name fragments; empty means every service
//   - position: evaluation order within the destination, ascending
func NewRouteRule(destinationCountry string, carrierKeywords, serviceKeywords []string, position int) (*RouteRule, error) {
	return RestoreRouteRule(kernel.NewUUID(), destinationCountry, carrierKeywords, serviceKeywords, position)
}

// RestoreRouteRule rebuilds a persisted rule, keeping its identifier.
func RestoreRouteRule(id kernel.UUID, destinationCountry string, carrierKeywords, serviceKeywords []string,
	position int) (*RouteRule, error) {
	r := &RouteRule{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setDestination(destinationCountry),
		r.setCarrierKeywords(carrierKeywords),
		r.setPosition(position),
	); err != nil {
		return nil, err
	}
	r.serviceKeywords = lowerAll(NormalizeKeywords(serviceKeywords))

	return r, nil
}

// Validate checks that the RouteRule was created through a constructor.
func (r *RouteRule) Validate() error {
	if r == nil {
		return ErrRouteRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRouteRuleIsNotConstructed)
}

func (r *RouteRule) ID() kernel.UUID { return r.id }

// DestinationCountry returns the upper-case country code or AnyDestination.
func (r *RouteRule) DestinationCountry() string { return r.destinationCountry }

func (r *RouteRule) CarrierKeywords() []string { return append([]string{}, r.carrierKeywords...) }
func (r *RouteRule) ServiceKeywords() []string { return append([]string{}, r.serviceKeywords...) }
func (r *RouteRule) Position() int             { return r.position }

// IsWildcard reports whether the rule applies to destinations without their own rules.
func (r *RouteRule) IsWildcard() bool {
	return r.destinationCountry == AnyDestination
}

// MatchesCarrier reports whether any carrier keyword occurs in the carrier name.
func (r *RouteRule) MatchesCarrier(carrier string) bool {
	return containsAny(strings.ToLower(carrier), r.carrierKeywords)
}

// AllowsService reports whether the service is offered under this rule.
func (r *RouteRule) AllowsService(service string) bool {
	if len(r.serviceKeywords) == 0 {
		return true
	}
	return containsAny(strings.ToLower(service), r.serviceKeywords)
}

func (r *RouteRule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	r.id = id
	return nil
}

func (r *RouteRule) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == AnyDestination {
		r.destinationCountry = AnyDestination
		return nil
	}

	c, err := kernel.NewCountry(destination)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destinationCountry", err)
	}
	r.destinationCountry = c.Code()
	return nil
}

func (r *RouteRule) setCarrierKeywords(keywords []string) error {
	keywords = lowerAll(NormalizeKeywords(keywords))
	if len(keywords) == 0 {
		return errs.NewValueIsRequiredError("carrierKeywords")
	}
	r.carrierKeywords = keywords
	return nil
}

func (r *RouteRule) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is negative", position))
	}
	r.position = position
	return nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func lowerAll(s []string) []string {
	for i := range s {
		s[i] = strings.ToLower(s[i])
	}
	return s
}
