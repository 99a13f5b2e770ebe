// Package sendparcel is the optional secondary rate provider.
package sendparcel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"shiprates/internal/adapters/out/carrierapi"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"
)

// DefaultURL is the SendParcel rates endpoint.
const DefaultURL = "https://api.sendparcel.com/v1/rates"

type location struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state,omitempty"`
}

type parcel struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ratesRequest struct {
	From   location `json:"from"`
	To     location `json:"to"`
	Parcel parcel   `json:"parcel"`
}

type rate struct {
	CarrierName        string            `json:"carrier_name"`
	ServiceName        string            `json:"service_name"`
	CarrierLogo        string            `json:"carrier_logo"`
	TotalPrice         carrierapi.Number `json:"total_price"`
	ShipmentCharge     carrierapi.Number `json:"shipment_charge"`
	DeliveryDays       carrierapi.Number `json:"delivery_days"`
	MinDeliveryDays    carrierapi.Number `json:"min_delivery_days"`
	MaxDeliveryDays    carrierapi.Number `json:"max_delivery_days"`
	PickupAvailable    bool              `json:"pickup_available"`
	DeliveryMethods    []string          `json:"delivery_methods"`
	ImportTax          carrierapi.Number `json:"import_tax"`
	ImportDuty         carrierapi.Number `json:"import_duty"`
	TrackingIncluded   bool              `json:"tracking_included"`
	InsuranceAvailable bool              `json:"insurance_available"`
	ServiceID          carrierapi.Text   `json:"service_id"`
}

type ratesResponse struct {
	Rates []rate `json:"rates"`
}

var _ ports.RateProvider = (*Provider)(nil)

// Provider implements ports.RateProvider for SendParcel.
type Provider struct {
	client *carrierapi.Client
	logger *slog.Logger
}

// NewProvider creates the adapter. Without an API key every call reports
// ports.ErrConfigurationMissing.
func NewProvider(url, apiKey string, httpClient *http.Client, logger *slog.Logger) *Provider {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		client: carrierapi.NewClient(url, apiKey, httpClient),
		logger: logger.With("component", "sendparcel_provider"),
	}
}

func (p *Provider) Name() string { return "sendparcel" }

func (p *Provider) Source() quote.Source { return quote.SourceSecondary }

// Enabled reports whether an API key was configured.
func (p *Provider) Enabled() bool { return p.client.Configured() }

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
	return ratesRequest{
		From: location{
			Country:    origin.Country().Code(),
			City:       origin.City(),
			PostalCode: origin.PostalCode(),
			State:      origin.State(),
		},
		To: location{
			Country:    destination.Country().Code(),
			City:       destination.City(),
			PostalCode: destination.PostalCode(),
			State:      destination.State(),
		},
		Parcel: parcel{
			Weight: p.WeightKg(),
			Length: p.LengthCm(),
			Width:  p.WidthCm(),
			Height: p.HeightCm(),
		},
	}
}

func mapRate(r rate, isDomestic bool) quote.Quote {
	window := quote.DeliveryWindow{MinDays: 1, MaxDays: 5}
	if r.MinDeliveryDays.IsSet() {
		window.MinDays = r.MinDeliveryDays.Int()
	}
	if r.MaxDeliveryDays.IsSet() {
		window.MaxDays = r.MaxDeliveryDays.Int()
	}

	estimated := "Varies"
	if r.DeliveryDays.IsSet() {
		estimated = fmt.Sprintf("%d business days", r.DeliveryDays.Int())
	}

	serviceType := "Drop-off required"
	if r.PickupAvailable {
		serviceType = "Pickup available"
	}

	methods := r.DeliveryMethods
	if len(methods) == 0 {
		methods = []string{quote.HandoverDropoff}
	}

	features := make([]string, 0, 2)
	if r.TrackingIncluded {
		features = append(features, "Tracking included")
	}
	if r.InsuranceAvailable {
		features = append(features, "Insurance available")
	}

	return quote.Quote{
		Carrier:          carrierapi.FirstNonEmpty("Unknown", r.CarrierName),
		Service:          carrierapi.FirstNonEmpty("Standard", r.ServiceName),
		Logo:             r.CarrierLogo,
		Price:            carrierapi.FirstSet(r.TotalPrice, r.ShipmentCharge).Float64(),
		Window:           window,
		EstimatedDays:    estimated,
		ServiceType:      serviceType,
		HandoverMethods:  methods,
		ImportTax:        r.ImportTax.Float64(),
		ImportDuty:       r.ImportDuty.Float64(),
		TotalTaxesDuties: r.ImportTax.Float64() + r.ImportDuty.Float64(),
		Features:         features,
		RateID:           "sendparcel-" + string(r.ServiceID),
		IsDomestic:       isDomestic,
	}
}
