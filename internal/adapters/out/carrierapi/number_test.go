package carrierapi_test

import (
	"encoding/json"
	"testing"

	"shiprates/internal/adapters/out/carrierapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"7.25"`, 7.25},
		{"padded string", `" 3 "`, 3},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var n carrierapi.Number

			err := json.Unmarshal([]byte(tc.raw), &n)

			require.NoError(t, err)
			assert.InDelta(t, tc.want, n.Float64(), 1e-9)
		})
	}

	t.Run("rejects non numeric text", func(t *testing.T) {
		var n carrierapi.Number
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	})
}

func TestText_UnmarshalJSON(t *testing.T) {
	var v struct {
		A carrierapi.Text `json:"a"`
		B carrierapi.Text `json:"b"`
		C carrierapi.Text `json:"c"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a":"x-1","b":42,"c":null}`), &v))

	assert.Equal(t, carrierapi.Text("x-1"), v.A)
	assert.Equal(t, carrierapi.Text("42"), v.B)
	assert.Equal(t, carrierapi.Text(""), v.C)
}

func TestFirstSet(t *testing.T) {
	assert.InDelta(t, 4.0, carrierapi.FirstSet(0, 4, 5).Float64(), 1e-9)
	assert.Zero(t, carrierapi.FirstSet(0, 0).Float64())
	assert.Equal(t, "b", carrierapi.FirstNonEmpty("z", " ", "b"))
	assert.Equal(t, "z", carrierapi.FirstNonEmpty("z"))
}
