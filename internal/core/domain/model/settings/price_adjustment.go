package settings

import (
	"errors"
	"math"

	"shiprates/internal/pkg/errs"
)

const (
	minPercentage = -100.0
	maxPercentage = 1000.0
)

// PriceAdjustment is the operator-controlled pricing configuration applied after aggregation.
//
// PriceAdjustment follows these invariants:
//   - Percentage lies in [-100, 1000]
//   - Threshold is non-negative; 0 applies the percentage to every quote
//   - MinimumPrice is non-negative; 0 disables the floor
type PriceAdjustment struct {
	percentage   float64
	threshold    float64
	minimumPrice float64
}

// NewPriceAdjustment validates and builds a price adjustment.
//
// Example:
//
//	adj, err := settings.NewPriceAdjustment(10, 50, 5)
//	// +10% on quotes priced under 50, then drop anything under 5
func NewPriceAdjustment(percentage, threshold, minimumPrice float64) (PriceAdjustment, error) {
	a := PriceAdjustment{}

	if err := errors.Join(
		a.setPercentage(percentage),
		setNonNegative("threshold", threshold, &a.threshold),
		setNonNegative("minimumPrice", minimumPrice, &a.minimumPrice),
	); err != nil {
		return PriceAdjustment{}, err
	}

	return a, nil
}

// NoPriceAdjustment leaves every price untouched and drops nothing.
func NoPriceAdjustment() PriceAdjustment {
	return PriceAdjustment{}
}

func (a PriceAdjustment) Percentage() float64   { return a.percentage }
func (a PriceAdjustment) Threshold() float64    { return a.threshold }
func (a PriceAdjustment) MinimumPrice() float64 { return a.minimumPrice }

// AppliesTo reports whether the percentage delta is applied to a quote with this price.
func (a PriceAdjustment) AppliesTo(price float64) bool {
	return a.percentage != 0 && (a.threshold == 0 || price < a.threshold)
}

// Adjust returns the price after the percentage delta, when it applies.
func (a PriceAdjustment) Adjust(price float64) float64 {
	if !a.AppliesTo(price) {
		return price
	}
	return price * (1 + a.percentage/100)
}

// Keeps reports whether an adjusted price survives the minimum floor.
func (a PriceAdjustment) Keeps(price float64) bool {
	return price >= a.minimumPrice
}

func (a *PriceAdjustment) setPercentage(percentage float64) error {
	if math.IsNaN(percentage) || percentage < minPercentage || percentage > maxPercentage {
		return errs.NewValueIsOutOfRangeError("percentage", percentage, minPercentage, maxPercentage)
	}
	a.percentage = percentage
	return nil
}

func setNonNegative(param string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsOutOfRangeError(param, value, 0, math.MaxFloat64)
	}
	*dst = value
	return nil
}
