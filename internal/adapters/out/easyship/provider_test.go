package easyship_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiprates/internal/adapters/out/easyship"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, from, fromState, to string, declared float64) shipment.Request {
	t.Helper()
	origin, err := shipment.NewAddress("origin", from, "New York", "10001", fromState)
	require.NoError(t, err)
	destination, err := shipment.NewAddress("destination", to, "Berlin", "10115", "")
	require.NoError(t, err)
	p, err := shipment.NewParcel(2, 30, 20, 10)
	require.NoError(t, err)
	r, err := shipment.NewRequest(origin, destination, p, "", declared)
	require.NoError(t, err)
	return r
}

func serve(t *testing.T, status int, body string, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if captured != nil {
			raw, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.NoError(t, json.Unmarshal(raw, captured))
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const ratesFixture = `{
  "rates": [
    {
      "courier_service": {"umbrella_name": "FedEx", "name": "FedEx International Priority", "logo": "https://logo/fedex.png", "courier_id": "c-123"},
      "total_charge": "42.50",
      "shipment_charge": 40,
      "min_delivery_time": 2,
      "max_delivery_time": "4",
      "available_handover_options": ["dropoff", "pickup"],
      "estimated_import_tax": 3.2,
      "estimated_import_duty": "1.1",
      "import_tax_charge": 3,
      "import_duty_charge": 1,
      "tracking_rating": 3,
      "courier_remarks": "No PO boxes",
      "incoterms": "DDP",
      "insurance_fee": "0.75"
    },
    {
      "courier_service": null,
      "shipment_charge": 18,
      "incoterms": "DDU"
    }
  ]
}`

func TestProvider_Quote(t *testing.T) {
	t.Run("maps live rates", func(t *testing.T) {
		// Arrange
		srv := serve(t, http.StatusOK, ratesFixture, nil)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		// Act
		quotes, err := p.Quote(t.Context(), newRequest(t, "US", "", "DE", 100))

		// Assert
		require.NoError(t, err)
		require.Len(t, quotes, 2)

		first := quotes[0]
		assert.Equal(t, "FedEx", first.Carrier)
		assert.Equal(t, "FedEx International Priority", first.Service)
		assert.Equal(t, "https://logo/fedex.png", first.Logo)
		assert.InDelta(t, 42.5, first.Price, 1e-9)
		assert.Equal(t, quote.DeliveryWindow{MinDays: 2, MaxDays: 4}, first.Window)
		assert.Equal(t, "2-4 business days", first.EstimatedDays)
		assert.Equal(t, "Pickup available", first.ServiceType)
		assert.Equal(t, []string{"dropoff", "pickup"}, first.HandoverMethods)
		assert.InDelta(t, 3.2, first.ImportTax, 1e-9)
		assert.InDelta(t, 1.1, first.ImportDuty, 1e-9)
		assert.InDelta(t, 4.0, first.TotalTaxesDuties, 1e-9)
		assert.Equal(t, []string{"Tracking included", "No PO boxes", "Duties included", "Insurance available"}, first.Features)
		assert.Equal(t, "c-123", first.RateID)
		assert.False(t, first.IsDomestic)

		second := quotes[1]
		assert.Equal(t, "Unknown", second.Carrier)
		assert.Equal(t, "Standard", second.Service)
		assert.InDelta(t, 18.0, second.Price, 1e-9)
		assert.Equal(t, quote.DeliveryWindow{MinDays: 1, MaxDays: 5}, second.Window)
		assert.Equal(t, "Varies", second.EstimatedDays)
		assert.Equal(t, "Standard delivery", second.ServiceType)
		assert.Empty(t, second.HandoverMethods)
		assert.Equal(t, []string{"Duties paid by receiver"}, second.Features)
	})

	t.Run("domestic rates carry no incoterms features", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"rates":[{"courier_service":{"name":"USPS Ground"},"total_charge":9,"incoterms":"DDP"}]}`, nil)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		quotes, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "USPS Ground", quotes[0].Carrier)
		assert.Empty(t, quotes[0].Features)
		assert.True(t, quotes[0].IsDomestic)
	})

	t.Run("sends the rates payload", func(t *testing.T) {
		var body map[string]any
		srv := serve(t, http.StatusOK, `{"rates":[]}`, &body)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		quotes, err := p.Quote(t.Context(), newRequest(t, "US", "NY", "DE", 120))

		require.NoError(t, err)
		assert.Empty(t, quotes)
		assert.Equal(t, "DDP", body["incoterms"])

		origin := body["origin_address"].(map[string]any)
		assert.Equal(t, "Main Street 1", origin["line_1"])
		assert.Equal(t, "US", origin["country_alpha2"])
		assert.Equal(t, "NY", origin["state"])

		destination := body["destination_address"].(map[string]any)
		assert.Equal(t, "Delivery Address 1", destination["line_1"])
		assert.NotContains(t, destination, "state")

		parcels := body["parcels"].([]any)
		require.Len(t, parcels, 1)
		parcel := parcels[0].(map[string]any)
		assert.InDelta(t, 2.0, parcel["total_actual_weight"], 1e-9)
		item := parcel["items"].([]any)[0].(map[string]any)
		assert.Equal(t, "USD", item["declared_currency"])
		assert.InDelta(t, 120.0, item["declared_customs_value"], 1e-9)
		assert.Equal(t, shipment.DefaultHSCode, item["hs_code"])
		assert.InDelta(t, 1.0, item["quantity"], 1e-9)
	})

	t.Run("domestic payload omits incoterms", func(t *testing.T) {
		var body map[string]any
		srv := serve(t, http.StatusOK, `{"rates":[]}`, &body)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		require.NoError(t, err)
		assert.NotContains(t, body, "incoterms")
	})
}

func TestProvider_QuoteFailures(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		p := easyship.NewProvider("", "", nil, nil)

		_, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		assert.ErrorIs(t, err, ports.ErrConfigurationMissing)
		assert.ErrorIs(t, err, ports.ErrProviderUnavailable)
	})

	t.Run("non 2xx status", func(t *testing.T) {
		srv := serve(t, http.StatusUnauthorized, `{"error":"bad key"}`, nil)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		assert.ErrorIs(t, err, ports.ErrTransportFailure)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"rates": "nope"}`, nil)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		assert.ErrorIs(t, err, ports.ErrSchemaMapping)
	})

	t.Run("every rate unusable", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"rates":[{"total_charge":-5}]}`, nil)
		p := easyship.NewProvider(srv.URL, "secret", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t, "US", "", "US", 0))

		assert.ErrorIs(t, err, ports.ErrSchemaMapping)
	})
}

func TestProvider_Identity(t *testing.T) {
	p := easyship.NewProvider("", "secret", nil, nil)

	assert.Equal(t, "easyship", p.Name())
	assert.Equal(t, quote.SourcePrimary, p.Source())
}
