package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookinghttp "github.com/neon-travel/booking-gateway/internal/adapter/http"
	"github.com/neon-travel/booking-gateway/internal/adapter/http/middleware"
	"github.com/neon-travel/booking-gateway/internal/adapter/http/response"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/usecase"
	"github.com/neon-travel/booking-gateway/test/mock"
	helpers "github.com/neon-travel/booking-gateway/test/testutil"
)

func TestHealth_ReportsMode(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		wantMode string
	}{
		{name: "live", apiKey: TestAPIKey, wantMode: bookinghttp.ModeLive},
		{name: "demo", apiKey: "", wantMode: bookinghttp.ModeDemo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := mock.NewDuffel(TestAPIKey)
			defer upstream.Close()
			ts := NewTestServer(t, upstream, Options{APIKey: tt.apiKey})

			resp := ts.Do(Request{Method: http.MethodGet, Path: "/health"})

			require.Equal(t, http.StatusOK, resp.Code)
			body := helpers.DecodeJSON[response.HealthResponse](t, resp.Body)
			assert.Equal(t, tt.wantMode, body.Mode)
			assert.NotEmpty(t, resp.Headers.Get(middleware.RequestIDHeader))
		})
	}
}

func TestFlightSearch_LiveUpstream(t *testing.T) {
	ts := NewLiveServer(t, Options{})
	ts.Upstream.WithOffers(helpers.LoadOffers(t, "duffel_offer_request.json"))

	req := DefaultSearchRequest()
	req.Passengers = 2
	req.SortBy = "price"
	req.DisplayCurrency = "EUR"
	resp := ts.SearchFlights(req)

	require.Equal(t, http.StatusOK, resp.Code)
	result := helpers.DecodeJSON[usecase.PipelineResult](t, resp.Body)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "off_0000AgZitRpHcVsHG3bRXE", result.Offers[0].ID)
	assert.Equal(t, 1, result.Offers[0].Stops)
	assert.Equal(t, "357.88", result.Offers[0].DisplayAmount)
	assert.Equal(t, "EUR", result.Offers[0].DisplayCurrency)
	assert.Equal(t, "389.00", result.Offers[0].TotalAmount)
	assert.Equal(t, 580, result.Offers[0].Duration.TotalMinutes)
	assert.Equal(t, []string{"0", "1"}, result.Facets.StopBuckets)

	var sent struct {
		Data struct {
			Slices     []map[string]string `json:"slices"`
			Passengers []map[string]string `json:"passengers"`
			CabinClass string              `json:"cabin_class"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ts.Upstream.LastBody(mock.PathOfferRequests), &sent))
	assert.Equal(t, "JFK", sent.Data.Slices[0]["origin"])
	assert.Equal(t, "2026-06-15", sent.Data.Slices[0]["departure_date"])
	assert.Len(t, sent.Data.Passengers, 2)
	assert.Equal(t, domain.DefaultCabinClass, sent.Data.CabinClass)

	success := ts.Metrics.UpstreamRequests().WithLabelValues(usecase.OpSearchFlights, metrics.OutcomeSuccess)
	assert.Equal(t, 1.0, testutil.ToFloat64(success))
}

func TestFlightSearch_FallsBackToMockOffers(t *testing.T) {
	tests := []struct {
		name       string
		configure  func(d *mock.Duffel)
		apiKey     string
		wantReason string
		wantCalls  int
	}{
		{
			name:       "upstream error",
			configure:  func(d *mock.Duffel) { d.WithFailure(mock.PathOfferRequests, http.StatusInternalServerError, `{"errors":[]}`) },
			apiKey:     TestAPIKey,
			wantReason: metrics.OutcomeUnavailable,
			wantCalls:  1,
		},
		{
			name:       "upstream rejects request",
			configure:  func(d *mock.Duffel) { d.WithFailure(mock.PathOfferRequests, http.StatusBadRequest, `{"errors":[{"code":"validation_required"}]}`) },
			apiKey:     TestAPIKey,
			wantReason: metrics.OutcomeValidation,
			wantCalls:  1,
		},
		{
			name:       "no offers",
			configure:  func(d *mock.Duffel) {},
			apiKey:     TestAPIKey,
			wantReason: metrics.OutcomeEmpty,
			wantCalls:  1,
		},
		{
			name:       "demo mode",
			configure:  func(d *mock.Duffel) {},
			apiKey:     "",
			wantReason: metrics.OutcomeNotConfigured,
			wantCalls:  0,
		},
		{
			name:       "wrong credential",
			configure:  func(d *mock.Duffel) {},
			apiKey:     "duffel_wrong",
			wantReason: metrics.OutcomeUnavailable,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := mock.NewDuffel(TestAPIKey)
			defer upstream.Close()
			tt.configure(upstream)
			ts := NewTestServer(t, upstream, Options{APIKey: tt.apiKey})

			resp := ts.SearchFlights(DefaultSearchRequest())

			require.Equal(t, http.StatusOK, resp.Code)
			result := helpers.DecodeJSON[usecase.PipelineResult](t, resp.Body)
			require.Equal(t, 3, result.Total)

			// The JFK to LHR demo departures keep their times of day
			departures := make([]string, len(result.Offers))
			for i, o := range result.Offers {
				departures[i] = o.Slices[0].Segments[0].DepartingAt
			}
			assert.Equal(t, []string{"2026-06-15T18:00:00", "2026-06-15T20:00:00", "2026-06-15T09:00:00"}, departures)

			fallback := ts.Metrics.Fallbacks().WithLabelValues(usecase.OpSearchFlights, tt.wantReason)
			assert.Equal(t, 1.0, testutil.ToFloat64(fallback))
			assert.Equal(t, tt.wantCalls, upstream.CallCount(mock.PathOfferRequests))
		})
	}
}

func TestGatewaySurface_FlightSearch(t *testing.T) {
	t.Run("upstream validation passes through", func(t *testing.T) {
		ts := NewLiveServer(t, Options{})
		ts.Upstream.WithFailure(mock.PathOfferRequests, http.StatusBadRequest, `{"errors":[{"code":"invalid_date"}]}`)

		resp := ts.Do(Request{Method: http.MethodPost, Path: "/gateway/search", Body: DefaultSearchRequest()})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.JSONEq(t, `{"error":"Duffel API Error","details":{"errors":[{"code":"invalid_date"}]},"statusCode":400}`, string(resp.Body))
		assert.Equal(t, "*", resp.Headers.Get("Access-Control-Allow-Origin"))
	})

	t.Run("upstream failure", func(t *testing.T) {
		ts := NewLiveServer(t, Options{})
		ts.Upstream.WithFailure(mock.PathOfferRequests, http.StatusServiceUnavailable, `{"errors":[{"code":"unavailable"}]}`)

		resp := ts.Do(Request{Method: http.MethodPost, Path: "/gateway/search", Body: DefaultSearchRequest()})

		assert.Equal(t, http.StatusBadGateway, resp.Code)
		body := helpers.DecodeJSON[response.GatewayError](t, resp.Body)
		assert.Equal(t, response.GatewayErrUpstream, body.Error)
		assert.Equal(t, http.StatusServiceUnavailable, body.StatusCode)
	})

	t.Run("no credential", func(t *testing.T) {
		upstream := mock.NewDuffel(TestAPIKey)
		defer upstream.Close()
		ts := NewTestServer(t, upstream, Options{})

		resp := ts.Do(Request{Method: http.MethodPost, Path: "/gateway/search", Body: DefaultSearchRequest()})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t, `{"error":"No Duffel API Key set"}`, string(resp.Body))
	})

	t.Run("offers", func(t *testing.T) {
		ts := NewLiveServer(t, Options{})
		ts.Upstream.WithOffers(mock.SampleOffers("JFK", "LHR", "2026-06-15", 4))

		resp := ts.Do(Request{Method: http.MethodPost, Path: "/gateway/search", Body: DefaultSearchRequest()})

		require.Equal(t, http.StatusOK, resp.Code)
		var body struct {
			Data bookinghttp.GatewayOffersDTO `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body, &body))
		assert.Len(t, body.Data.Offers, 4)
	})
}

func TestGatewaySurface_PlacesAndOrders(t *testing.T) {
	ts := NewLiveServer(t, Options{})
	ts.Upstream.WithPlaces(
		mock.PlaceSuggestion{IATACode: "LHR", Name: "Heathrow Airport", CityName: "London", CountryName: "United Kingdom"},
		mock.PlaceSuggestion{Name: "London"},
	)

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/gateway/places/suggestions?query=lon"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":[{"iata_code":"LHR","name":"Heathrow Airport","city_name":"London","country_name":"United Kingdom"}]}`, string(resp.Body))

	resp = ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/gateway/order",
		Body:   domain.OrderRequest{OfferID: "off_1", GivenName: "Ada", FamilyName: "Lovelace", Email: "ada@example.com"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var order struct {
		Data domain.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &order))
	assert.Equal(t, "DUF123", order.Data.BookingReference)

	var sent struct {
		Data struct {
			Type           string   `json:"type"`
			SelectedOffers []string `json:"selected_offers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ts.Upstream.LastBody(mock.PathOrders), &sent))
	assert.Equal(t, "instant", sent.Data.Type)
	assert.Equal(t, []string{"off_1"}, sent.Data.SelectedOffers)

	resp = ts.Do(Request{Method: http.MethodOptions, Path: "/gateway/order"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", string(resp.Body))

	resp = ts.Do(Request{Method: http.MethodGet, Path: "/gateway/nope"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestStaysSearch_SendsGeographicPayload(t *testing.T) {
	ts := NewLiveServer(t, Options{})
	ts.Upstream.WithStays([]domain.StayResult{{
		ID:                      "sta_live_1",
		CheapestRateTotalAmount: "210.00",
		CheapestRateCurrency:    "EUR",
		Accommodation: domain.Accommodation{
			Name:   "Hotel Lumière",
			Rating: 4.6,
			Location: &domain.AccommodationLocation{
				Address: &domain.Address{CityName: "Paris"},
			},
		},
	}})

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/stays/search",
		Body:   map[string]any{"location": "Paris, France", "checkIn": "2026-03-01", "guests": 2},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	body := helpers.DecodeJSON[bookinghttp.StaysResponse](t, resp.Body)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Paris", body.Offers[0].Location)
	assert.Equal(t, "210.00", body.Offers[0].PricePerNight)

	var sent struct {
		Data domain.StaysSearchPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ts.Upstream.LastBody(mock.PathStays), &sent))
	assert.Equal(t, "2026-03-01", sent.Data.CheckInDate)
	assert.Equal(t, "2026-03-03", sent.Data.CheckOutDate)
	assert.InDelta(t, 48.8566, sent.Data.Location.GeographicCoordinates.Latitude, 0.0001)
	assert.Len(t, sent.Data.Guests, 2)
}

func TestBookingFunnel(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		wantPrefix string
	}{
		{name: "live order", apiKey: TestAPIKey, wantPrefix: "DUF"},
		{name: "demo order", apiKey: "", wantPrefix: usecase.BookingReferencePrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := mock.NewDuffel(TestAPIKey)
			defer upstream.Close()
			ts := NewTestServer(t, upstream, Options{APIKey: tt.apiKey})

			resp := ts.SearchFlights(DefaultSearchRequest())
			require.Equal(t, http.StatusOK, resp.Code)
			offer := helpers.DecodeJSON[usecase.PipelineResult](t, resp.Body).Offers[0].FlightOffer

			session := ts.Signup(t, "grace@example.com", "Grace", "Hopper")
			booking := map[string]any{
				"serviceType": "FLIGHTS",
				"offerId":     offer.ID,
				"givenName":   "Grace",
				"familyName":  "Hopper",
				"offer":       domain.TaggedOffer{Offer: offer},
			}
			resp = ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/orders", Body: booking, SessionID: session})

			require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))
			order := helpers.DecodeJSON[domain.Order](t, resp.Body)
			assert.True(t, strings.HasPrefix(order.BookingReference, tt.wantPrefix), order.BookingReference)
			assert.Equal(t, domain.OrderConfirmed, order.Status)
			assert.Equal(t, "Grace Hopper", order.CustomerName)
			assert.Equal(t, "grace@example.com", order.CustomerEmail)
			assert.Equal(t, offer.TotalAmount, order.Amount)

			var snapshot domain.TaggedOffer
			require.NoError(t, json.Unmarshal(order.Details, &snapshot))
			assert.Equal(t, domain.ServiceFlights, snapshot.Offer.Kind())

			resp = ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/orders?type=FLIGHTS", SessionID: session})
			require.Equal(t, http.StatusOK, resp.Code)
			history := helpers.DecodeJSON[bookinghttp.OrdersResponse](t, resp.Body)
			require.Equal(t, 1, history.Total)
			assert.Equal(t, order.ID, history.Orders[0].ID)
		})
	}
}

func TestBookingFunnel_SessionsAreIsolated(t *testing.T) {
	upstream := mock.NewDuffel(TestAPIKey)
	defer upstream.Close()
	ts := NewTestServer(t, upstream, Options{})

	alice := ts.Signup(t, "alice@example.com", "Alice", "Liddell")
	bob := ts.Signup(t, "bob@example.com", "Bob", "Builder")

	booking := map[string]any{"serviceType": "CARS", "offerId": "car_1", "givenName": "Alice", "familyName": "Liddell"}
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/orders", Body: booking, SessionID: alice})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/orders", SessionID: bob})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, helpers.DecodeJSON[bookinghttp.OrdersResponse](t, resp.Body).Total)

	resp = ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/auth/logout", SessionID: alice})
	require.Equal(t, http.StatusOK, resp.Code)
	resp = ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/orders", SessionID: alice})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := NewLiveServer(t, Options{})

	ts.Do(Request{Method: http.MethodGet, Path: "/health"})
	ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/experiences/exp_detty_december"})

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/metrics"})

	require.Equal(t, http.StatusOK, resp.Code)
	body := string(resp.Body)
	assert.Contains(t, body, `gateway_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `route="/api/v1/experiences/:id"`)
}

func TestRequestID_Propagates(t *testing.T) {
	ts := NewLiveServer(t, Options{})

	resp := ts.Do(Request{
		Method:  http.MethodGet,
		Path:    "/api/v1/experiences",
		Headers: map[string]string{middleware.RequestIDHeader: "req-fixed-1"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "req-fixed-1", resp.Headers.Get(middleware.RequestIDHeader))
}
