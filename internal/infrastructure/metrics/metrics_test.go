package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveUpstream(t *testing.T) {
	rec := New(prometheus.NewRegistry())

	rec.ObserveUpstream("search_flights", OutcomeSuccess, 120*time.Millisecond)
	rec.ObserveUpstream("search_flights", OutcomeSuccess, 80*time.Millisecond)
	rec.ObserveUpstream("search_flights", OutcomeValidation, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.UpstreamRequests().WithLabelValues("search_flights", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.UpstreamRequests().WithLabelValues("search_flights", OutcomeValidation)))
}

func TestRecorder_IncFallback(t *testing.T) {
	rec := Nop()

	rec.IncFallback("search_stays", "unavailable")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues("search_stays", "unavailable")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues("search_flights", "empty")))
}

func TestRecorder_ObserveHTTP(t *testing.T) {
	rec := Nop()

	rec.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.HTTPRequests().WithLabelValues("GET", "/health", "200")))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var rec *Recorder

	assert.NotPanics(t, func() {
		rec.ObserveUpstream("op", OutcomeSuccess, time.Second)
		rec.IncFallback("op", "empty")
		rec.ObserveHTTP("GET", "/", 200, time.Second)
	})
}

func TestRecorder_Handler(t *testing.T) {
	rec := Nop()
	rec.IncFallback("search_flights", "empty")

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gateway_fallbacks_total{operation="search_flights",reason="empty"} 1`)
}
