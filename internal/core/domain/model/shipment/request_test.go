package shipment_test

import (
	"math"
	"testing"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, param, country string) shipment.Address {
	t.Helper()
	a, err := shipment.NewAddress(param, country, "City", "10001", "")
	require.NoError(t, err)
	return a
}

func mustParcel(t *testing.T) shipment.Parcel {
	t.Helper()
	p, err := shipment.NewParcel(5, 30, 20, 15)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("chargeable weight uses actual when heavier", func(t *testing.T) {
		p := mustParcel(t)

		assert.InDelta(t, 1.8, p.VolumetricWeight(), 1e-9)
		assert.InDelta(t, 5.0, p.ChargeableWeight(), 1e-9)
	})

	t.Run("chargeable weight uses volumetric when bulkier", func(t *testing.T) {
		p, err := shipment.NewParcel(1, 50, 40, 30)

		require.NoError(t, err)
		assert.InDelta(t, 12.0, p.ChargeableWeight(), 1e-9)
	})

	t.Run("rejects non positive measurements", func(t *testing.T) {
		testCases := []struct {
			name                          string
			weight, length, width, height float64
		}{
			{"zero weight", 0, 1, 1, 1},
			{"negative length", 1, -1, 1, 1},
			{"zero width", 1, 1, 0, 1},
			{"NaN height", 1, 1, 1, math.NaN()},
			{"infinite weight", math.Inf(1), 1, 1, 1},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := shipment.NewParcel(tc.weight, tc.length, tc.width, tc.height)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p shipment.Parcel
		assert.Error(t, p.Validate())
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("keeps optional state", func(t *testing.T) {
		a, err := shipment.NewAddress("destination", "us", " New York ", "10001", "NY")

		require.NoError(t, err)
		assert.Equal(t, "US", a.Country().Code())
		assert.Equal(t, "New York", a.City())
		assert.Equal(t, "NY", a.State())
	})

	t.Run("reports every missing field", func(t *testing.T) {
		_, err := shipment.NewAddress("origin", "", "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "origin.country")
		assert.Contains(t, err.Error(), "origin.city")
		assert.Contains(t, err.Error(), "origin.postalCode")
	})
}

func TestNewRequest(t *testing.T) {
	t.Run("domestic without declared value defaults to weight times ten", func(t *testing.T) {
		r, err := shipment.NewRequest(mustAddress(t, "origin", "US"), mustAddress(t, "destination", "US"), mustParcel(t), "", 0)

		require.NoError(t, err)
		assert.True(t, r.IsDomestic())
		assert.False(t, r.AppliesCustomsDuties())
		assert.InDelta(t, 50.0, r.DeclaredValue(), 1e-9)
		assert.Equal(t, shipment.DefaultHSCode, r.HSCode())
	})

	t.Run("international requires declared value", func(t *testing.T) {
		_, err := shipment.NewRequest(mustAddress(t, "origin", "US"), mustAddress(t, "destination", "DE"), mustParcel(t), "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("negative declared value is invalid", func(t *testing.T) {
		_, err := shipment.NewRequest(mustAddress(t, "origin", "US"), mustAddress(t, "destination", "US"), mustParcel(t), "", -1)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("international with value applies duties", func(t *testing.T) {
		r, err := shipment.NewRequest(mustAddress(t, "origin", "US"), mustAddress(t, "destination", "DE"), mustParcel(t), "61091000", 120)

		require.NoError(t, err)
		assert.False(t, r.IsDomestic())
		assert.True(t, r.AppliesCustomsDuties())
		assert.Equal(t, "61091000", r.HSCode())
		assert.InDelta(t, 120.0, r.DeclaredValue(), 1e-9)
	})

	t.Run("intra EU has no duties", func(t *testing.T) {
		r, err := shipment.NewRequest(mustAddress(t, "origin", "DE"), mustAddress(t, "destination", "FR"), mustParcel(t), "", 30)

		require.NoError(t, err)
		assert.False(t, r.AppliesCustomsDuties())
	})

	t.Run("rejects unconstructed parts", func(t *testing.T) {
		_, err := shipment.NewRequest(shipment.Address{}, mustAddress(t, "destination", "US"), mustParcel(t), "", 10)

		assert.ErrorIs(t, err, shipment.ErrAddressIsNotConstructed)
	})
}
