package http

import (
	"errors"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/generated/servers"
	"shiprates/internal/pkg/errs"
)

func toShipmentRequest(body servers.RateRequest) (shipment.Request, error) {
	origin, originErr := shipment.NewAddress("origin", body.FromCountry, body.FromCity, body.FromZip, deref(body.FromState))
	destination, destinationErr := shipment.NewAddress("destination", body.ToCountry, body.ToCity, body.ToZip, deref(body.ToState))
	parcel, parcelErr := shipment.NewParcel(body.Weight, body.Length, body.Width, body.Height)
	if err := errors.Join(originErr, destinationErr, parcelErr); err != nil {
		return shipment.Request{}, err
	}

	return shipment.NewRequest(origin, destination, parcel, deref(body.HsCode), deref(body.DeclaredValue))
}

func toQuotes(list quote.List) []servers.Quote {
	out := make([]servers.Quote, len(list))
	for i, q := range list {
		var logo *string
		if q.Logo != "" {
			logo = &q.Logo
		}

		out[i] = servers.Quote{
			Courier:                  q.Carrier,
			Service:                  q.Service,
			Logo:                     logo,
			Price:                    q.Price,
			EstimatedDays:            q.EstimatedDays,
			DeliveryTime:             servers.DeliveryTime{Min: q.Window.MinDays, Max: q.Window.MaxDays},
			ServiceType:              q.ServiceType,
			AvailableDeliveryMethods: nonNil(q.HandoverMethods),
			ImportTax:                q.ImportTax,
			ImportDuty:               q.ImportDuty,
			TotalTaxesDuties:         q.TotalTaxesDuties,
			Features:                 nonNil(q.Features),
			EasyshipRateId:           q.RateID,
			IsDomestic:               q.IsDomestic,
		}
	}
	return out
}

// keywords accepts either a JSON array or one comma-separated string. A missing
// field clears the list.
func keywords(param string, list *servers.KeywordList) ([]string, error) {
	if list == nil {
		return nil, nil
	}
	if arr, err := list.AsKeywordList0(); err == nil {
		return arr, nil
	}
	csv, err := list.AsKeywordList1()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, errors.New("expected an array of strings or a comma-separated string"))
	}
	return settings.ParseKeywords(csv), nil
}

func priceAdjustmentBody(percentage, threshold, minimumPrice float64) servers.PriceAdjustment {
	return servers.PriceAdjustment{
		Percentage:   percentage,
		Threshold:    &threshold,
		MinimumPrice: &minimumPrice,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
