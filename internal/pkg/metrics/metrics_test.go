package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shiprates/internal/core/application/rating"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ rating.Recorder = (*metrics.Metrics)(nil)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.ProviderOutcome("easyship", rating.OutcomeUnavailable)
	m.ProviderOutcome("easyship", rating.OutcomeUnavailable)
	m.ProviderOutcome("mock", rating.OutcomeServed)
	m.QuotesServed(quote.SourceMock, true, 3)
	m.RecordHTTPRequest(http.MethodPost, "/api/v1/rates", http.StatusOK, 20*time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.ProviderOutcomes.WithLabelValues("easyship", "unavailable")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.ProviderOutcomes.WithLabelValues("mock", "served")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.QuotesServedTotal.WithLabelValues("mock", "true")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/rates", "200")), 1e-9)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.QuotesServed(quote.SourcePrimary, false, 5)
	rec := httptest.NewRecorder()

	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `shiprates_quote_sets_served_total{source="primary",unfiltered="false"} 1`)
}
