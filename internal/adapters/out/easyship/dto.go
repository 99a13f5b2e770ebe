package easyship

import "shiprates/internal/adapters/out/carrierapi"

type address struct {
	Line1         string `json:"line_1"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CountryAlpha2 string `json:"country_alpha2"`
	State         string `json:"state,omitempty"`
}

type box struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type item struct {
	ActualWeight         float64 `json:"actual_weight"`
	DeclaredCurrency     string  `json:"declared_currency"`
	DeclaredCustomsValue float64 `json:"declared_customs_value"`
	HSCode               string  `json:"hs_code"`
	Quantity             int     `json:"quantity"`
	Description          string  `json:"description"`
}

type parcel struct {
	TotalActualWeight float64 `json:"total_actual_weight"`
	Box               box     `json:"box"`
	Items             []item  `json:"items"`
}

type ratesRequest struct {
	OriginAddress      address  `json:"origin_address"`
	DestinationAddress address  `json:"destination_address"`
	Parcels            []parcel `json:"parcels"`
	Incoterms          string   `json:"incoterms,omitempty"`
}

type courierService struct {
	UmbrellaName string          `json:"umbrella_name"`
	Name         string          `json:"name"`
	Logo         string          `json:"logo"`
	CourierID    carrierapi.Text `json:"courier_id"`
}

type rate struct {
	CourierService           *courierService   `json:"courier_service"`
	TotalCharge              carrierapi.Number `json:"total_charge"`
	ShipmentCharge           carrierapi.Number `json:"shipment_charge"`
	MinDeliveryTime          carrierapi.Number `json:"min_delivery_time"`
	MaxDeliveryTime          carrierapi.Number `json:"max_delivery_time"`
	AvailableHandoverOptions []string          `json:"available_handover_options"`
	EstimatedImportTax       carrierapi.Number `json:"estimated_import_tax"`
	EstimatedImportDuty      carrierapi.Number `json:"estimated_import_duty"`
	ImportTaxCharge          carrierapi.Number `json:"import_tax_charge"`
	ImportDutyCharge         carrierapi.Number `json:"import_duty_charge"`
	TrackingRating           carrierapi.Number `json:"tracking_rating"`
	CourierRemarks           string            `json:"courier_remarks"`
	Incoterms                string            `json:"incoterms"`
	InsuranceFee             carrierapi.Number `json:"insurance_fee"`
}

type ratesResponse struct {
	Rates []rate `json:"rates"`
}
