package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookinghttp "github.com/neon-travel/booking-gateway/internal/adapter/http"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
	"github.com/neon-travel/booking-gateway/internal/usecase"
	"github.com/neon-travel/booking-gateway/test/mock"
	helpers "github.com/neon-travel/booking-gateway/test/testutil"
)

// TestConcurrent_MultipleSearchRequests checks that concurrent searches do not interfere.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	ts := NewLiveServer(t, Options{})
	ts.Upstream.
		WithDelay(10 * time.Millisecond).
		WithOffers(mock.SampleOffers("JFK", "LHR", "2026-06-15", 3))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := DefaultSearchRequest()
			req.SortBy = "duration"
			results[idx] = ts.SearchFlights(req)
		}(i)
	}
	wg.Wait()

	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)
		result := helpers.DecodeJSON[usecase.PipelineResult](t, results[i].Body)
		require.Len(t, result.Offers, 3, "request %d should have 3 offers", i)
		assert.Equal(t, "off_live_3", result.Offers[0].ID, "request %d should sort by duration", i)
	}

	assert.Equal(t, numRequests, ts.Upstream.CallCount(mock.PathOfferRequests))
	success := ts.Metrics.UpstreamRequests().WithLabelValues(usecase.OpSearchFlights, metrics.OutcomeSuccess)
	assert.Equal(t, float64(numRequests), testutil.ToFloat64(success))
}

// TestConcurrent_TrendingDealsBoundedBySlowUpstream checks that each hub search is cut off
// by its own deadline and replaced by the mock offers.
func TestConcurrent_TrendingDealsBoundedBySlowUpstream(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC))
	ts := NewLiveServer(t, Options{
		Clock: clock,
		Deals: usecase.DealsConfig{CandidateTimeout: 50 * time.Millisecond},
	})
	ts.Upstream.
		WithDelay(2 * time.Second).
		WithOffers(mock.SampleOffers("JFK", "LHR", "2026-02-05", 1))

	start := time.Now()
	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/deals/trending"})
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Less(t, elapsed, time.Second, "hub searches should run concurrently under their deadline")

	body := helpers.DecodeJSON[bookinghttp.DealsResponse](t, resp.Body)
	assert.Equal(t, usecase.DefaultDealOrigin, body.Origin)
	require.Len(t, body.Deals, usecase.DefaultDealsMax)

	wantHubs := []string{"LHR", "CDG", "DXB", "HND", "SIN"}
	for i, deal := range body.Deals {
		assert.Equal(t, wantHubs[i], deal.Destination)
		assert.Equal(t, "320.50", deal.Price)
		assert.Equal(t, "CyberWings", deal.Airline)
		assert.Equal(t, "2026-02-05", deal.DepartureDate)
	}

	fallbacks := ts.Metrics.Fallbacks().WithLabelValues(usecase.OpSearchFlights, metrics.OutcomeUnavailable)
	assert.Equal(t, float64(usecase.DefaultDealsMax), testutil.ToFloat64(fallbacks))
}

// TestConcurrent_TrendingDealsFromUpstream checks the cheapest live offer is picked per hub.
func TestConcurrent_TrendingDealsFromUpstream(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC))
	ts := NewLiveServer(t, Options{Clock: clock, Deals: usecase.DealsConfig{Max: 3}})
	ts.Upstream.WithOffers(mock.SampleOffers("LHR", "CDG", "2026-02-05", 3))

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/deals/trending?origin=lhr"})

	require.Equal(t, http.StatusOK, resp.Code)
	body := helpers.DecodeJSON[bookinghttp.DealsResponse](t, resp.Body)
	assert.Equal(t, "LHR", body.Origin)
	require.Len(t, body.Deals, 3)

	wantHubs := []string{"CDG", "DXB", "HND"}
	for i, deal := range body.Deals {
		assert.Equal(t, wantHubs[i], deal.Destination)
		assert.Equal(t, "199.00", deal.Price)
		assert.Equal(t, "NeonAir", deal.Airline)
		assert.Equal(t, fmt.Sprintf("deal_LHR_%s", wantHubs[i]), deal.ID)
	}
	assert.Equal(t, 3, ts.Upstream.CallCount(mock.PathOfferRequests))
}

// TestConcurrent_BookingsPerSession checks that concurrent bookings land in their own session.
func TestConcurrent_BookingsPerSession(t *testing.T) {
	upstream := mock.NewDuffel(TestAPIKey)
	defer upstream.Close()
	ts := NewTestServer(t, upstream, Options{})

	numTravelers := 8
	sessions := make([]string, numTravelers)
	for i := range sessions {
		sessions[i] = ts.Signup(t, fmt.Sprintf("traveler%d@example.com", i), "Traveler", fmt.Sprintf("No%d", i))
	}

	bookingsEach := 3
	var wg sync.WaitGroup
	codes := make([][]int, numTravelers)
	for i := range sessions {
		codes[i] = make([]int, bookingsEach)
		for j := 0; j < bookingsEach; j++ {
			wg.Add(1)
			go func(traveler, n int) {
				defer wg.Done()
				resp := ts.Do(Request{
					Method: http.MethodPost,
					Path:   "/api/v1/orders",
					Body: map[string]any{
						"serviceType": domain.ServiceSecurity,
						"offerId":     fmt.Sprintf("sec_%d_%d", traveler, n),
						"givenName":   "Traveler",
						"familyName":  fmt.Sprintf("No%d", traveler),
					},
					SessionID: sessions[traveler],
				})
				codes[traveler][n] = resp.Code
			}(i, j)
		}
	}
	wg.Wait()

	for i, id := range sessions {
		for j, code := range codes[i] {
			assert.Equal(t, http.StatusCreated, code, "booking %d of traveler %d", j, i)
		}

		resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/orders", SessionID: id})
		require.Equal(t, http.StatusOK, resp.Code)
		history := helpers.DecodeJSON[bookinghttp.OrdersResponse](t, resp.Body)
		require.Equal(t, bookingsEach, history.Total, "traveler %d", i)
		for _, o := range history.Orders {
			assert.Equal(t, fmt.Sprintf("traveler%d@example.com", i), o.CustomerEmail)
			assert.Equal(t, domain.ServiceSecurity, o.ServiceType)
		}
	}
}
