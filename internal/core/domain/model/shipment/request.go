package shipment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

const (
	// DefaultHSCode is used when the customer does not pick a harmonized system code.
	DefaultHSCode = "96180000"

	// defaultDeclaredValuePerKg derives a declared value for domestic requests that omit it.
	defaultDeclaredValuePerKg = 10.0
)

// ErrRequestIsNotConstructed is returned when a zero-value Request is used.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the immutable input of a rate calculation.
//
// Request follows these invariants:
//   - Origin, destination and parcel are valid value objects
//   - Non-domestic requests carry a strictly positive declared customs value
//   - Domestic requests without a declared value get weight × 10
//   - HS code defaults to DefaultHSCode
type Request struct { //nolint:recvcheck //using for validation
	origin        Address
	destination   Address
	parcel        Parcel
	hsCode        string
	declaredValue float64
	guard         guard.ConstructorGuard
}

// NewRequest assembles a shipment request and enforces the customs invariants.
//
// Parameters:
//   - origin, destination: validated addresses
//   - parcel: validated package measurements
//   - hsCode: harmonized system code ("" selects DefaultHSCode)
//   - declaredValue: customs value in USD (0 allowed only for domestic shipments)
//
// Returns:
//   - Request: the assembled request
//   - error: joined validation errors
func NewRequest(origin, destination Address, parcel Parcel, hsCode string, declaredValue float64) (Request, error) {
	r := Request{guard: guard.NewConstructorGuard()}

	if err := errors.Join(origin.Validate(), destination.Validate(), parcel.Validate()); err != nil {
		return Request{}, err
	}
	r.origin = origin
	r.destination = destination
	r.parcel = parcel

	r.hsCode = strings.TrimSpace(hsCode)
	if r.hsCode == "" {
		r.hsCode = DefaultHSCode
	}

	if err := r.setDeclaredValue(declaredValue); err != nil {
		return Request{}, err
	}

	return r, nil
}

// Validate checks that the Request was created through NewRequest.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r Request) Origin() Address      { return r.origin }
func (r Request) Destination() Address { return r.destination }
func (r Request) Parcel() Parcel       { return r.parcel }
func (r Request) HSCode() string       { return r.hsCode }

// DeclaredValue returns the customs value in USD, defaulted for domestic requests.
func (r Request) DeclaredValue() float64 {
	return r.declaredValue
}

// IsDomestic reports whether origin and destination countries are identical.
func (r Request) IsDomestic() bool {
	return kernel.IsDomestic(r.origin.Country().Code(), r.destination.Country().Code())
}

// AppliesCustomsDuties reports whether import tax and duty apply to this route.
func (r Request) AppliesCustomsDuties() bool {
	return kernel.AppliesCustomsDuties(r.origin.Country().Code(), r.destination.Country().Code(), r.IsDomestic())
}

func (r *Request) setDeclaredValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%v is negative or not finite", value))
	}

	if value == 0 {
		if !r.IsDomestic() {
			return errs.NewValueIsRequiredErrorWithCause("declaredValue",
				errors.New("international shipments require a declared customs value greater than 0"))
		}
		value = r.parcel.WeightKg() * defaultDeclaredValuePerKg
	}

	r.declaredValue = value
	return nil
}
