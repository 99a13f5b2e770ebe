package quote

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shiprates/internal/pkg/errs"
)

// Handover methods reported by providers.
const (
	HandoverPickup     = "pickup"
	HandoverDropoff    = "dropoff"
	HandoverFreePickup = "free_pickup"
)

// DeliveryWindow is the promised delivery range in business days.
type DeliveryWindow struct {
	MinDays int
	MaxDays int
}

// Quote is one priced shipping option, normalized across providers.
//
// Price never includes taxes or duties. TotalTaxesDuties is kept as reported
// and is not required to equal ImportTax+ImportDuty.
type Quote struct {
	Carrier          string
	Service          string
	Logo             string
	Price            float64
	Window           DeliveryWindow
	EstimatedDays    string
	ServiceType      string
	HandoverMethods  []string
	ImportTax        float64
	ImportDuty       float64
	TotalTaxesDuties float64
	Features         []string
	RateID           string
	IsDomestic       bool
}

// Validate checks the fields every provider mapping must produce.
func (q Quote) Validate() error {
	var errList []error

	if strings.TrimSpace(q.Carrier) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("carrier"))
	}
	if strings.TrimSpace(q.Service) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("service"))
	}
	for name, v := range map[string]float64{
		"price":            q.Price,
		"importTax":        q.ImportTax,
		"importDuty":       q.ImportDuty,
		"totalTaxesDuties": q.TotalTaxesDuties,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative or not finite", v)))
		}
	}
	if q.Window.MinDays > q.Window.MaxDays {
		errList = append(errList, errs.NewValueIsOutOfRangeError("window.minDays", q.Window.MinDays, 0, q.Window.MaxDays))
	}

	return errors.Join(errList...)
}

// Label is the lowercase "{carrier} {service}" string used for keyword matching.
func (q Quote) Label() string {
	return strings.ToLower(q.Carrier + " " + q.Service)
}

// WithPrice returns a copy of q carrying the new price.
func (q Quote) WithPrice(price float64) Quote {
	q.Price = price
	q.HandoverMethods = cloneStrings(q.HandoverMethods)
	q.Features = cloneStrings(q.Features)
	return q
}

// TotalWithCharges is the price plus import tax and import duty.
func (q Quote) TotalWithCharges() float64 {
	return q.Price + q.ImportTax + q.ImportDuty
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
