package shipment

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is one end of a shipment. State is optional and only forwarded to
// providers that accept a province/state field.
type Address struct { //nolint:recvcheck //using for validation
	country    kernel.Country
	city       string
	postalCode string
	state      string
	guard      guard.ConstructorGuard
}

// NewAddress validates the required geography fields (country, city, postal code).
// The param prefix ("origin" / "destination") is used in validation messages.
func NewAddress(param, country, city, postalCode, state string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setCountry(param, country),
		a.setCity(param, city),
		a.setPostalCode(param, postalCode),
	); err != nil {
		return Address{}, err
	}

	a.state = strings.TrimSpace(state)
	return a, nil
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Country() kernel.Country {
	return a.country
}

func (a Address) City() string {
	return a.city
}

func (a Address) PostalCode() string {
	return a.postalCode
}

// State returns the state/province, or "" when absent.
func (a Address) State() string {
	return a.state
}

func (a *Address) setCountry(param, country string) error {
	c, err := kernel.NewCountry(country)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param+".country", err)
	}
	a.country = c
	return nil
}

func (a *Address) setCity(param, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError(param + ".city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(param, postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError(param + ".postalCode")
	}
	a.postalCode = postalCode
	return nil
}
