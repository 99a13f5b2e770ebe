package services_test

import (
	"testing"

	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/model/settings"
	"shiprates/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestKeywordFilter_Filter(t *testing.T) {
	quotes := quote.List{q("FedEx", "Priority", 10), q("USPS", "Ground", 5)}

	testCases := []struct {
		name     string
		positive []string
		negative []string
		want     []string
	}{
		{"positive keeps matches only", []string{"fedex"}, nil, []string{"FedEx Priority"}},
		{"negative removes matches", nil, []string{"ground"}, []string{"FedEx Priority"}},
		{"no keywords keeps all", nil, nil, []string{"FedEx Priority", "USPS Ground"}},
		{"negative wins over positive", []string{"fedex", "usps"}, []string{"FEDEX"}, []string{"USPS Ground"}},
		{"case insensitive", []string{"PRIORITY"}, nil, []string{"FedEx Priority"}},
		{"matches across carrier and service", []string{"usps ground"}, nil, []string{"USPS Ground"}},
		{"nothing matches", []string{"dhl"}, nil, []string{}},
	}

	filter := services.NewKeywordFilter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.Filter(quotes, settings.NewFilterSettings(tc.positive, tc.negative))

			assert.Equal(t, tc.want, names(got))
		})
	}

	t.Run("input is not modified", func(t *testing.T) {
		_ = filter.Filter(quotes, settings.NewFilterSettings(nil, []string{"fedex"}))

		assert.Len(t, quotes, 2)
	})
}
