package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neon-travel/booking-gateway/internal/catalog"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

var testNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestOrchestrator(t *testing.T) (*Orchestrator, *MockGatewayPort, *metrics.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := NewMockGatewayPort(ctrl)
	rec := metrics.Nop()
	o := NewOrchestrator(gw, &OrchestratorConfig{
		Clock:   timeutil.NewMockClock(testNow),
		Metrics: rec,
	})
	return o, gw, rec
}

func TestOrchestrator_SearchFlights_ReturnsUpstreamOffers(t *testing.T) {
	o, gw, rec := newTestOrchestrator(t)
	offers := []domain.FlightOffer{createTestOffer("off_live", "199.00", "NeonAir", "PT7H", 1, "")}
	gw.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(offers, nil)

	got := o.SearchFlights(context.Background(), domain.FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15"})

	assert.Equal(t, offers, got)
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues(OpSearchFlights, metrics.OutcomeEmpty)))
}

func TestOrchestrator_SearchFlights_FallsBack(t *testing.T) {
	tests := []struct {
		name   string
		offers []domain.FlightOffer
		err    error
		reason string
	}{
		{"validation error", nil, domain.NewUpstreamValidationError(400, nil), metrics.OutcomeValidation},
		{"upstream error", nil, domain.NewUpstreamUnavailableError(502, nil), metrics.OutcomeUnavailable},
		{"transport error", nil, domain.NewTransportError(errors.New("dial tcp: timeout")), metrics.OutcomeUnavailable},
		{"plain error", nil, errors.New("boom"), metrics.OutcomeUnavailable},
		{"missing credential", nil, domain.NewNotConfiguredError(), metrics.OutcomeNotConfigured},
		{"empty result", []domain.FlightOffer{}, nil, metrics.OutcomeEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, gw, rec := newTestOrchestrator(t)
			gw.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(tt.offers, tt.err)

			req := domain.FlightSearchRequest{Origin: "cdg", Destination: "dxb", DepartureDate: "2026-09-01"}
			got := o.SearchFlights(context.Background(), req)

			require.Len(t, got, 3)
			for _, offer := range got {
				require.NoError(t, offer.Validate())
				seg, _ := offer.FirstSegment()
				assert.Equal(t, "CDG", seg.Origin.IATACode)
				assert.Equal(t, "DXB", seg.Destination.IATACode)
				assert.True(t, strings.HasPrefix(seg.DepartingAt, "2026-09-01T"))
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues(OpSearchFlights, tt.reason)))
		})
	}
}

func TestMockFlightsFor_JFKToLHR(t *testing.T) {
	offers := MockFlightsFor(domain.FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-07-04"})

	require.Len(t, offers, 3)
	departures := make([]string, len(offers))
	for i, o := range offers {
		seg, ok := o.FirstSegment()
		require.True(t, ok)
		departures[i] = seg.DepartingAt
		assert.True(t, strings.HasPrefix(seg.ArrivingAt, "2026-07-04T"))
	}
	assert.Equal(t, []string{"2026-07-04T18:00:00", "2026-07-04T20:00:00", "2026-07-04T09:00:00"}, departures)
}

func TestMockFlightsFor_NoDateReturnsCatalog(t *testing.T) {
	got := MockFlightsFor(domain.FlightSearchRequest{Origin: "SIN", Destination: "HND"})

	assert.Equal(t, catalog.MockFlights(), got)
}

func TestMockFlightsFor_DefaultsCodes(t *testing.T) {
	got := MockFlightsFor(domain.FlightSearchRequest{DepartureDate: "2026-07-04"})

	seg, _ := got[0].FirstSegment()
	assert.Equal(t, "JFK", seg.Origin.IATACode)
	assert.Equal(t, "LHR", seg.Destination.IATACode)
}

func TestMockFlightsFor_DoesNotMutateCatalog(t *testing.T) {
	before := catalog.MockFlights()

	_ = MockFlightsFor(domain.FlightSearchRequest{Origin: "AAA", Destination: "BBB", DepartureDate: "2030-01-01"})

	assert.Equal(t, before, catalog.MockFlights())
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "18:00:00", timeOfDay("2026-06-15T18:00:00", defaultMockDeparture))
	assert.Equal(t, defaultMockDeparture, timeOfDay("2026-06-15", defaultMockDeparture))
	assert.Equal(t, defaultMockArrival, timeOfDay("", defaultMockArrival))
}

func TestResolveFlightsOrFallback(t *testing.T) {
	live := []domain.FlightOffer{createTestOffer("live", "1", "A", "PT1H", 1, "")}
	req := domain.FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15"}

	assert.Equal(t, live, ResolveFlightsOrFallback(FlightAttempt{Offers: live}, req))
	assert.Len(t, ResolveFlightsOrFallback(FlightAttempt{Offers: live, Err: errors.New("partial")}, req), 3)
	assert.Len(t, ResolveFlightsOrFallback(FlightAttempt{}, req), 3)
}

func TestFlightAttempt_FallbackReason(t *testing.T) {
	assert.Empty(t, FlightAttempt{Offers: []domain.FlightOffer{{ID: "x"}}}.FallbackReason())
	assert.Equal(t, metrics.OutcomeEmpty, FlightAttempt{}.FallbackReason())
	assert.Equal(t, metrics.OutcomeValidation, FlightAttempt{Err: domain.NewUpstreamValidationError(400, nil)}.FallbackReason())
}

func TestResolveStayDates(t *testing.T) {
	clock := timeutil.NewMockClock(testNow)

	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantCheckIn  string
		wantCheckOut string
	}{
		{"no dates", "", "", "2026-02-15", "2026-02-17"},
		{"check-in only", "2026-05-30", "", "2026-05-30", "2026-06-01"},
		{"explicit check-out honoured", "2026-05-30", "2026-06-10", "2026-05-30", "2026-06-10"},
		{"check-out only", "", "2026-03-01", "2026-02-15", "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := ResolveStayDates(clock, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCheckIn, in)
			assert.Equal(t, tt.wantCheckOut, out)
		})
	}
}

func TestResolveStayDates_InvalidDates(t *testing.T) {
	clock := timeutil.NewMockClock(testNow)

	_, _, err := ResolveStayDates(clock, "15/01/2026", "")
	assert.True(t, domain.IsInvalidRequest(err))

	_, _, err = ResolveStayDates(clock, "2026-01-15", "tomorrow")
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestResolveStayDates_MonthRollover(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC))

	in, out, err := ResolveStayDates(clock, "", "")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", in)
	assert.Equal(t, "2026-03-05", out)
}

func TestBuildStaysPayload(t *testing.T) {
	payload := BuildStaysPayload(domain.StaySearchRequest{Location: "Tokyo, Japan"}, "2026-02-15", "2026-02-17")

	assert.Equal(t, 10, payload.Location.Radius.Value)
	assert.Equal(t, "km", payload.Location.Radius.Unit)
	assert.Equal(t, 35.6762, payload.Location.GeographicCoordinates.Latitude)
	assert.Equal(t, 1, payload.Rooms)
	assert.Equal(t, []domain.Guest{{Type: "adult"}, {Type: "adult"}}, payload.Guests)

	payload = BuildStaysPayload(domain.StaySearchRequest{Location: "Atlantis", Guests: 3}, "a", "b")
	assert.Equal(t, 51.5074, payload.Location.GeographicCoordinates.Latitude)
	assert.Len(t, payload.Guests, 3)
}

func TestOrchestrator_SearchStays_MapsResults(t *testing.T) {
	o, gw, _ := newTestOrchestrator(t)

	var results []domain.StayResult
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"srr_1","accommodation":{"name":"Ritz","rating":5,
			"location":{"address":{"city_name":"Paris"}},
			"photos":[{"url":"https://img/1.jpg"}],
			"amenities":[{"description":"Pool"},{"description":"Spa"}]},
		 "cheapest_rate_total_amount":"420.00","cheapest_rate_currency":"EUR"},
		{"accommodation":{"name":"Sparse Inn"}}
	]`), &results))

	gw.EXPECT().SearchStays(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.StaysSearchPayload) ([]domain.StayResult, error) {
			assert.Equal(t, "2026-02-15", p.CheckInDate)
			assert.Equal(t, "2026-02-17", p.CheckOutDate)
			assert.Equal(t, 48.8566, p.Location.GeographicCoordinates.Latitude)
			return results, nil
		})

	offers, err := o.SearchStays(context.Background(), domain.StaySearchRequest{Location: "Paris, France"})
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, domain.StayOffer{
		ID:            "srr_1",
		Name:          "Ritz",
		Location:      "Paris",
		PricePerNight: "420.00",
		Currency:      "EUR",
		Rating:        5,
		ImageURL:      "https://img/1.jpg",
		Amenities:     []string{"Pool", "Spa"},
	}, offers[0])

	sparse := offers[1]
	assert.True(t, strings.HasPrefix(sparse.ID, "stay_"))
	assert.Equal(t, "Paris, France", sparse.Location)
	assert.Equal(t, "150", sparse.PricePerNight)
	assert.Equal(t, "USD", sparse.Currency)
	assert.Equal(t, 4.5, sparse.Rating)
	assert.Equal(t, catalog.DefaultStayImage, sparse.ImageURL)
	assert.Equal(t, []string{"Wifi", "AC"}, sparse.Amenities)
}

func TestMapStayResults_UnknownLocation(t *testing.T) {
	offers := MapStayResults([]domain.StayResult{{ID: "x"}}, "")
	assert.Equal(t, "Unknown", offers[0].Location)
}

func TestOrchestrator_SearchStays_EmptyIsNotFallback(t *testing.T) {
	o, gw, _ := newTestOrchestrator(t)
	gw.EXPECT().SearchStays(gomock.Any(), gomock.Any()).Return([]domain.StayResult{}, nil)

	offers, err := o.SearchStays(context.Background(), domain.StaySearchRequest{Location: "Dubai"})

	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestOrchestrator_SearchStays_FallsBack(t *testing.T) {
	o, gw, rec := newTestOrchestrator(t)
	gw.EXPECT().SearchStays(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotConfiguredError())

	offers, err := o.SearchStays(context.Background(), domain.StaySearchRequest{Location: "Lagos"})

	require.NoError(t, err)
	require.Len(t, offers, 2)
	for _, s := range offers {
		assert.Equal(t, "Lagos", s.Location)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues(OpSearchStays, metrics.OutcomeNotConfigured)))

	assert.Equal(t, "Paris, France", MockStaysFor("")[0].Location)
}

func TestOrchestrator_SearchStays_InvalidDateSkipsGateway(t *testing.T) {
	o, _, _ := newTestOrchestrator(t)

	_, err := o.SearchStays(context.Background(), domain.StaySearchRequest{Location: "Paris", CheckIn: "soon"})

	assert.True(t, domain.IsInvalidRequest(err))
}

func TestOrchestrator_SearchPlaces(t *testing.T) {
	t.Run("short query makes no call", func(t *testing.T) {
		o, _, _ := newTestOrchestrator(t)
		assert.Empty(t, o.SearchPlaces(context.Background(), "l"))
		assert.Empty(t, o.SearchPlaces(context.Background(), "  "))
	})

	t.Run("returns gateway suggestions", func(t *testing.T) {
		o, gw, _ := newTestOrchestrator(t)
		places := []domain.Place{{Code: "LGW", City: "London", Name: "Gatwick", Country: "United Kingdom"}}
		gw.EXPECT().SearchPlaces(gomock.Any(), "lon").Return(places, nil)

		assert.Equal(t, places, o.SearchPlaces(context.Background(), " lon "))
	})

	t.Run("falls back to airport table", func(t *testing.T) {
		o, gw, _ := newTestOrchestrator(t)
		gw.EXPECT().SearchPlaces(gomock.Any(), "london").Return(nil, domain.NewTransportError(errors.New("down")))

		got := o.SearchPlaces(context.Background(), "london")

		require.NotEmpty(t, got)
		for _, p := range got {
			assert.Equal(t, "London", p.City)
		}
	})

	t.Run("fallback is capped", func(t *testing.T) {
		o, gw, _ := newTestOrchestrator(t)
		gw.EXPECT().SearchPlaces(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		assert.LessOrEqual(t, len(o.SearchPlaces(context.Background(), "in")), catalog.MaxPlaceMatches)
	})
}

func TestOrchestrator_CreateOrder(t *testing.T) {
	t.Run("passes gateway order through", func(t *testing.T) {
		o, gw, _ := newTestOrchestrator(t)
		want := &domain.Order{ID: "ord_1", BookingReference: "NEON-1234", Status: domain.OrderConfirmed}
		gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(want, nil)

		assert.Equal(t, want, o.CreateOrder(context.Background(), domain.OrderRequest{OfferID: "off_1"}))
	})

	t.Run("synthesizes when gateway unreachable", func(t *testing.T) {
		o, gw, rec := newTestOrchestrator(t)
		gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.NewTransportError(errors.New("refused")))

		order := o.CreateOrder(context.Background(), domain.OrderRequest{OfferID: "off_1"})

		require.NotNil(t, order)
		assert.Regexp(t, bookingRefPattern, order.BookingReference)
		assert.Equal(t, domain.OrderConfirmed, order.Status)
		assert.Equal(t, "2026-01-15T09:30:00Z", order.CreatedAt)
		assert.Equal(t, 1.0, testutil.ToFloat64(rec.Fallbacks().WithLabelValues(OpCreateOrder, metrics.OutcomeUnavailable)))
	})
}

func TestOrchestrator_Catalogs(t *testing.T) {
	o, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	assert.Len(t, o.SearchCars(ctx, domain.CarSearchRequest{PickupLocation: "LAX"}), 2)

	teams := o.SearchSecurity(ctx, domain.SecuritySearchRequest{Location: "Paris", PersonnelCount: 8})
	require.NotEmpty(t, teams)
	assert.Equal(t, 8, teams[0].PersonnelCount)
	assert.Equal(t, domain.DefaultPersonnel, o.SearchSecurity(ctx, domain.SecuritySearchRequest{})[0].PersonnelCount)

	experiences := o.ListExperiences(ctx)
	require.NotEmpty(t, experiences)

	exp, err := o.GetExperience(ctx, experiences[0].ID)
	require.NoError(t, err)
	assert.Equal(t, experiences[0].ID, exp.ID)

	_, err = o.GetExperience(ctx, "exp_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
