// Package easyship is the primary rate provider backed by the Easyship
// multi-carrier rates API.
package easyship

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"shiprates/internal/adapters/out/carrierapi"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"
)

// DefaultURL is the production rates endpoint.
const DefaultURL = "https://public-api.easyship.com/2024-09/rates"

const (
	originLine1      = "Main Street 1"
	destinationLine1 = "Delivery Address 1"
	itemDescription  = "Package"
	currencyUSD      = "USD"
	incotermsDDP     = "DDP"
	incotermsDDU     = "DDU"

	defaultMinDays = 1
	defaultMaxDays = 5
)

var _ ports.RateProvider = (*Provider)(nil)

// Provider implements ports.RateProvider.
type Provider struct {
	client *carrierapi.Client
	logger *slog.Logger
}

// NewProvider creates the adapter. An empty url selects DefaultURL; an empty
// apiKey makes every call fail with ports.ErrConfigurationMissing.
func NewProvider(url, apiKey string, httpClient *http.Client, logger *slog.Logger) *Provider {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		client: carrierapi.NewClient(url, apiKey, httpClient),
		logger: logger.With("component", "easyship_provider"),
	}
}

func (p *Provider) Name() string { return "easyship" }

func (p *Provider) Source() quote.Source { return quote.SourcePrimary }

// Quote requests live rates and maps every usable one.
func (p *Provider) Quote(ctx context.Context, req shipment.Request) (quote.List, error) {
	var resp ratesResponse
	if err := p.client.PostJSON(ctx, buildRequest(req), &resp); err != nil {
		return nil, err
	}

	isDomestic := req.IsDomestic()
	quotes := make(quote.List, 0, len(resp.Rates))
	for i, r := range resp.Rates {
		q := mapRate(r, isDomestic)
		if err := q.Validate(); err != nil {
			p.logger.WarnContext(ctx, "Skipping unusable rate", "index", i, "carrier", q.Carrier, "error", err)
			continue
		}
		quotes = append(quotes, q)
	}

	if len(resp.Rates) > 0 && len(quotes) == 0 {
		return nil, fmt.Errorf("%w: none of %d rates could be mapped", ports.ErrSchemaMapping, len(resp.Rates))
	}
	return quotes, nil
}

func buildRequest(req shipment.Request) ratesRequest {
	origin, destination, p := req.Origin(), req.Destination(), req.Parcel()

	out := ratesRequest{
		OriginAddress: address{
			Line1:         originLine1,
			City:          origin.City(),
			PostalCode:    origin.PostalCode(),
			CountryAlpha2: origin.Country().Code(),
			State:         origin.State(),
		},
		DestinationAddress: address{
			Line1:         destinationLine1,
			City:          destination.City(),
			PostalCode:    destination.PostalCode(),
			CountryAlpha2: destination.Country().Code(),
			State:         destination.State(),
		},
		Parcels: []parcel{{
			TotalActualWeight: p.WeightKg(),
			Box:               box{Length: p.LengthCm(), Width: p.WidthCm(), Height: p.HeightCm()},
			Items: []item{{
				ActualWeight:         p.WeightKg(),
				DeclaredCurrency:     currencyUSD,
				DeclaredCustomsValue: req.DeclaredValue(),
				HSCode:               req.HSCode(),
				Quantity:             1,
				Description:          itemDescription,
			}},
		}},
	}

	if !req.IsDomestic() {
		out.Incoterms = incotermsDDP
	}
	return out
}

func mapRate(r rate, isDomestic bool) quote.Quote {
	var svc courierService
	if r.CourierService != nil {
		svc = *r.CourierService
	}

	window := quote.DeliveryWindow{MinDays: defaultMinDays, MaxDays: defaultMaxDays}
	if r.MinDeliveryTime.IsSet() {
		window.MinDays = r.MinDeliveryTime.Int()
	}
	if r.MaxDeliveryTime.IsSet() {
		window.MaxDays = r.MaxDeliveryTime.Int()
	}

	estimated := "Varies"
	if r.MinDeliveryTime.IsSet() {
		estimated = fmt.Sprintf("%d-%d business days", r.MinDeliveryTime.Int(), window.MaxDays)
	}

	handover := r.AvailableHandoverOptions
	if handover == nil {
		handover = []string{}
	}

	return quote.Quote{
		Carrier:          carrierapi.FirstNonEmpty("Unknown", svc.UmbrellaName, svc.Name),
		Service:          carrierapi.FirstNonEmpty("Standard", svc.Name),
		Logo:             svc.Logo,
		Price:            carrierapi.FirstSet(r.TotalCharge, r.ShipmentCharge).Float64(),
		Window:           window,
		EstimatedDays:    estimated,
		ServiceType:      serviceType(handover),
		HandoverMethods:  handover,
		ImportTax:        r.EstimatedImportTax.Float64(),
		ImportDuty:       r.EstimatedImportDuty.Float64(),
		TotalTaxesDuties: r.ImportTaxCharge.Float64() + r.ImportDutyCharge.Float64(),
		Features:         features(r, isDomestic),
		RateID:           string(svc.CourierID),
		IsDomestic:       isDomestic,
	}
}

func serviceType(handover []string) string {
	switch {
	case slices.Contains(handover, quote.HandoverFreePickup):
		return "Free pickup available"
	case slices.Contains(handover, quote.HandoverPickup):
		return "Pickup available"
	case slices.Contains(handover, quote.HandoverDropoff):
		return "Drop-off required"
	default:
		return "Standard delivery"
	}
}

func features(r rate, isDomestic bool) []string {
	out := make([]string, 0, 4)
	if r.TrackingRating.Float64() > 0 {
		out = append(out, "Tracking included")
	}
	if r.CourierRemarks != "" {
		out = append(out, r.CourierRemarks)
	}
	if !isDomestic && r.Incoterms == incotermsDDU {
		out = append(out, "Duties paid by receiver")
	}
	if !isDomestic && r.Incoterms == incotermsDDP {
		out = append(out, "Duties included")
	}
	if r.InsuranceFee.Float64() > 0 {
		out = append(out, "Insurance available")
	}
	return out
}
