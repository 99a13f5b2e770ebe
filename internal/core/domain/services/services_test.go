package services_test

import (
	"testing"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index, so every price ends in the same fraction.
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func newRequest(t *testing.T, from, to string, weight, length, width, height, declared float64) shipment.Request {
	t.Helper()
	origin, err := shipment.NewAddress("origin", from, "Origin City", "10001", "")
	require.NoError(t, err)
	destination, err := shipment.NewAddress("destination", to, "Destination City", "20002", "")
	require.NoError(t, err)
	parcel, err := shipment.NewParcel(weight, length, width, height)
	require.NoError(t, err)
	req, err := shipment.NewRequest(origin, destination, parcel, "", declared)
	require.NoError(t, err)
	return req
}

func q(carrier, service string, price float64) quote.Quote {
	return quote.Quote{Carrier: carrier, Service: service, Price: price}
}

func names(l quote.List) []string {
	out := make([]string, 0, len(l))
	for _, x := range l {
		out = append(out, x.Carrier+" "+x.Service)
	}
	return out
}
