package shipment

import (
	"errors"
	"fmt"
	"math"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// VolumetricDivisor is the industry dimensional-weight coefficient for centimetres and kilograms.
const VolumetricDivisor = 5000.0

// ErrParcelIsNotConstructed is returned when a zero-value Parcel is used.
var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

// Parcel holds the physical package measurements in kilograms and centimetres.
//
// Parcel follows these invariants:
//   - Weight, length, width and height are all strictly positive and finite
//   - Can only be created through NewParcel
type Parcel struct { //nolint:recvcheck //using for validation
	weightKg float64
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

// NewParcel validates every measurement and reports all violations at once.
//
// Example:
//
//	p, err := shipment.NewParcel(5, 30, 20, 15)
//	if err != nil {
//	    // Handle validation error
//	}
//	p.ChargeableWeight() // 5 (volumetric is 1.8)
func NewParcel(weightKg, lengthCm, widthCm, heightCm float64) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setPositive("weight", weightKg, &p.weightKg),
		setPositive("length", lengthCm, &p.lengthCm),
		setPositive("width", widthCm, &p.widthCm),
		setPositive("height", heightCm, &p.heightCm),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate checks that the Parcel was created through NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) WeightKg() float64 { return p.weightKg }
func (p Parcel) LengthCm() float64 { return p.lengthCm }
func (p Parcel) WidthCm() float64  { return p.widthCm }
func (p Parcel) HeightCm() float64 { return p.heightCm }

// VolumetricWeight returns (L×W×H)/5000.
func (p Parcel) VolumetricWeight() float64 {
	return VolumetricWeight(p.lengthCm, p.widthCm, p.heightCm)
}

// ChargeableWeight returns the greater of actual and volumetric weight.
func (p Parcel) ChargeableWeight() float64 {
	return ChargeableWeight(p.weightKg, p.lengthCm, p.widthCm, p.heightCm)
}

// VolumetricWeight returns the dimensional weight in kilograms for centimetre dimensions.
func VolumetricWeight(lengthCm, widthCm, heightCm float64) float64 {
	return (lengthCm * widthCm * heightCm) / VolumetricDivisor
}

// ChargeableWeight returns max(actual, volumetric), the weight carriers bill on.
func ChargeableWeight(weightKg, lengthCm, widthCm, heightCm float64) float64 {
	return math.Max(weightKg, VolumetricWeight(lengthCm, widthCm, heightCm))
}

func setPositive(param string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not greater than 0", value))
	}
	*dst = value
	return nil
}
