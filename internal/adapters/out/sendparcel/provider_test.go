package sendparcel_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiprates/internal/adapters/out/sendparcel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) shipment.Request {
	t.Helper()
	origin, err := shipment.NewAddress("origin", "US", "Austin", "73301", "TX")
	require.NoError(t, err)
	destination, err := shipment.NewAddress("destination", "GB", "London", "SW1A 1AA", "")
	require.NoError(t, err)
	p, err := shipment.NewParcel(1.5, 20, 15, 10)
	require.NoError(t, err)
	r, err := shipment.NewRequest(origin, destination, p, "", 40)
	require.NoError(t, err)
	return r
}

func TestProvider_Quote(t *testing.T) {
	// Arrange
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		_, _ = io.WriteString(w, `{"rates":[
			{"carrier_name":"Royal Mail","service_name":"Tracked 48","total_price":"12.40","delivery_days":2,
			 "min_delivery_days":2,"max_delivery_days":3,"pickup_available":true,"delivery_methods":["pickup"],
			 "import_tax":"2","import_duty":1.5,"tracking_included":true,"insurance_available":true,"service_id":77},
			{"shipment_charge":6}
		]}`)
	}))
	t.Cleanup(srv.Close)
	p := sendparcel.NewProvider(srv.URL, "key", srv.Client(), nil)

	// Act
	quotes, err := p.Quote(t.Context(), newRequest(t))

	// Assert
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	first := quotes[0]
	assert.Equal(t, "Royal Mail", first.Carrier)
	assert.Equal(t, "Tracked 48", first.Service)
	assert.InDelta(t, 12.4, first.Price, 1e-9)
	assert.Equal(t, "2 business days", first.EstimatedDays)
	assert.Equal(t, quote.DeliveryWindow{MinDays: 2, MaxDays: 3}, first.Window)
	assert.Equal(t, "Pickup available", first.ServiceType)
	assert.Equal(t, []string{"pickup"}, first.HandoverMethods)
	assert.InDelta(t, 3.5, first.TotalTaxesDuties, 1e-9)
	assert.Equal(t, []string{"Tracking included", "Insurance available"}, first.Features)
	assert.Equal(t, "sendparcel-77", first.RateID)

	second := quotes[1]
	assert.Equal(t, "Unknown", second.Carrier)
	assert.Equal(t, "Standard", second.Service)
	assert.InDelta(t, 6.0, second.Price, 1e-9)
	assert.Equal(t, "Varies", second.EstimatedDays)
	assert.Equal(t, quote.DeliveryWindow{MinDays: 1, MaxDays: 5}, second.Window)
	assert.Equal(t, "Drop-off required", second.ServiceType)
	assert.Equal(t, []string{"dropoff"}, second.HandoverMethods)
	assert.Empty(t, second.Features)

	from := body["from"].(map[string]any)
	assert.Equal(t, "TX", from["state"])
	to := body["to"].(map[string]any)
	assert.Equal(t, "GB", to["country"])
	assert.NotContains(t, to, "state")
	assert.InDelta(t, 1.5, body["parcel"].(map[string]any)["weight"], 1e-9)
}

func TestProvider_Failures(t *testing.T) {
	t.Run("disabled without api key", func(t *testing.T) {
		p := sendparcel.NewProvider("", "", nil, nil)

		_, err := p.Quote(t.Context(), newRequest(t))

		assert.False(t, p.Enabled())
		assert.ErrorIs(t, err, ports.ErrConfigurationMissing)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		p := sendparcel.NewProvider(srv.URL, "key", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t))

		assert.ErrorIs(t, err, ports.ErrTransportFailure)
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `<html>`)
		}))
		t.Cleanup(srv.Close)
		p := sendparcel.NewProvider(srv.URL, "key", srv.Client(), nil)

		_, err := p.Quote(t.Context(), newRequest(t))

		assert.ErrorIs(t, err, ports.ErrSchemaMapping)
	})
}
