package services

import (
	"math"
	"math/rand/v2"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
)

const (
	fuelSurchargeRate     = 0.08
	internationalHandling = 2.5
	importTaxRate         = 0.10
	importDutyRate        = 0.04
	discountThreshold     = 140.0
	discountFactor        = 0.75

	fedexLogo = "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9d/FedEx_Express.svg/320px-FedEx_Express.svg.png"
	uspsLogo  = "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d9/United_States_Postal_Service_Logo.svg/320px-United_States_Postal_Service_Logo.svg.png"

	featureTracking       = "Tracking included"
	featureSignature      = "Signature required"
	featureDutiesIncluded = "Duties included"
)

// priceFractions are the cents appended to every synthesized price.
var priceFractions = []float64{0.17, 0.24, 0.33, 0.47, 0.56, 0.68, 0.73, 0.89, 0.92}

// Rand picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type ratePerKg struct {
	domestic      float64
	international float64
}

func (r ratePerKg) pick(isDomestic bool) float64 {
	if isDomestic {
		return r.domestic
	}
	return r.international
}

var (
	fedexPriorityRate = ratePerKg{domestic: 5.5, international: 15.0}
	fedexExpressRate  = ratePerKg{domestic: 7.5, international: 12.0}
	uspsPriorityRate  = ratePerKg{domestic: 4.0, international: 10.0}
	uspsGroundRate    = ratePerKg{domestic: 3.0, international: 8.0}
)

// MockRateSynthesizer produces an approximate quote set for a fixed catalog of
// four services (FedEx ×2, USPS ×2) without any external dependency.
//
// Pricing per service:
//   - chargeable weight × per-kg rate × 1.08 fuel surcharge
//   - +2.50 handling on international shipments
//   - floor of the result plus a random fraction from priceFractions
//   - 10% import tax and 4% import duty when customs duties apply
//   - price, tax and duty scaled by 0.75 when their sum exceeds 140
//
// The returned list is not route filtered.
type MockRateSynthesizer struct {
	rnd Rand
}

// NewMockRateSynthesizer creates a synthesizer drawing price fractions from rnd.
// A nil rnd uses the math/rand/v2 global source.
func NewMockRateSynthesizer(rnd Rand) MockRateSynthesizer {
	if rnd == nil {
		rnd = globalRand{}
	}
	return MockRateSynthesizer{rnd: rnd}
}

// Synthesize builds the four catalog quotes for the request.
func (m MockRateSynthesizer) Synthesize(req shipment.Request) quote.List {
	isDomestic := req.IsDomestic()
	applyDuties := req.AppliesCustomsDuties()
	chargeable := req.Parcel().ChargeableWeight()

	price := func(rate ratePerKg) float64 {
		p := chargeable * rate.pick(isDomestic) * (1 + fuelSurchargeRate)
		if !isDomestic {
			p += internationalHandling
		}
		return math.Floor(p) + priceFractions[m.rnd.IntN(len(priceFractions))]
	}

	dutiesFeature := func() []string {
		if applyDuties {
			return []string{featureDutiesIncluded}
		}
		return nil
	}

	fedexPriority := quote.Quote{
		Carrier:         "FedEx",
		Service:         pickString(isDomestic, "Priority", "International Priority"),
		Logo:            fedexLogo,
		Price:           price(fedexPriorityRate),
		Window:          quote.DeliveryWindow{MinDays: 1, MaxDays: 3},
		EstimatedDays:   "1-3 business days",
		ServiceType:     "Pick-up or Drop-off available",
		HandoverMethods: []string{quote.HandoverPickup, quote.HandoverDropoff},
		Features:        append([]string{featureTracking, featureSignature}, dutiesFeature()...),
		RateID:          pickString(isDomestic, "mock-fedex-priority", "mock-fedex-intl-priority"),
	}

	expressFeatures := []string{featureTracking}
	if isDomestic {
		expressFeatures = append(expressFeatures, "Fastest option", featureSignature)
	}
	fedexExpress := quote.Quote{
		Carrier:         "FedEx",
		Service:         pickString(isDomestic, "Priority Express", "International Economy"),
		Logo:            fedexLogo,
		Price:           price(fedexExpressRate),
		Window:          pickWindow(isDomestic, quote.DeliveryWindow{MinDays: 1, MaxDays: 2}, quote.DeliveryWindow{MinDays: 3, MaxDays: 5}),
		EstimatedDays:   pickString(isDomestic, "1-2 business days", "3-5 business days"),
		ServiceType:     "Pick-up or Drop-off available",
		HandoverMethods: []string{quote.HandoverPickup, quote.HandoverDropoff},
		Features:        append(expressFeatures, dutiesFeature()...),
		RateID:          pickString(isDomestic, "mock-fedex-priority-express", "mock-fedex-intl-economy"),
	}

	uspsPriority := quote.Quote{
		Carrier:         "USPS",
		Service:         "Priority Mail",
		Logo:            uspsLogo,
		Price:           price(uspsPriorityRate),
		Window:          quote.DeliveryWindow{MinDays: 2, MaxDays: 3},
		EstimatedDays:   "2-3 business days",
		ServiceType:     "Drop-off required",
		HandoverMethods: []string{quote.HandoverDropoff},
		Features:        append([]string{featureTracking, "Affordable option"}, dutiesFeature()...),
		RateID:          "mock-usps-priority",
	}

	uspsGround := quote.Quote{
		Carrier:         "USPS",
		Service:         "Ground Advantage",
		Logo:            uspsLogo,
		Price:           price(uspsGroundRate),
		Window:          quote.DeliveryWindow{MinDays: 3, MaxDays: 5},
		EstimatedDays:   "3-5 business days",
		ServiceType:     "Drop-off required",
		HandoverMethods: []string{quote.HandoverDropoff},
		Features:        append([]string{featureTracking, "Most affordable"}, dutiesFeature()...),
		RateID:          "mock-usps-ground",
	}

	return quote.List{fedexPriority, fedexExpress, uspsPriority, uspsGround}.Map(func(q quote.Quote) quote.Quote {
		q.IsDomestic = isDomestic
		if applyDuties {
			q.ImportTax = q.Price * importTaxRate
			q.ImportDuty = q.Price * importDutyRate
			q.TotalTaxesDuties = q.ImportTax + q.ImportDuty
		}
		return applyBigShipmentDiscount(q)
	})
}

func applyBigShipmentDiscount(q quote.Quote) quote.Quote {
	if q.TotalWithCharges() <= discountThreshold {
		return q
	}
	q.Price *= discountFactor
	q.ImportTax *= discountFactor
	q.ImportDuty *= discountFactor
	q.TotalTaxesDuties = q.ImportTax + q.ImportDuty
	return q
}

func pickString(isDomestic bool, domestic, international string) string {
	if isDomestic {
		return domestic
	}
	return international
}

func pickWindow(isDomestic bool, domestic, international quote.DeliveryWindow) quote.DeliveryWindow {
	if isDomestic {
		return domestic
	}
	return international
}
