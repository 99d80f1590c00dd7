package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

func TestTrendingDeals_FromMockFallback(t *testing.T) {
	o, gw, _ := newTestOrchestrator(t)
	gw.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
			assert.Equal(t, "2026-02-05", req.DepartureDate)
			assert.Equal(t, 1, req.Passengers)
			assert.Equal(t, "economy", req.CabinClass)
			return nil, domain.NewNotConfiguredError()
		}).Times(5)

	deals := o.TrendingDeals(context.Background(), "JFK")

	require.Len(t, deals, 5)
	wantHubs := []string{"LHR", "CDG", "DXB", "HND", "SIN"}
	for i, d := range deals {
		assert.Equal(t, wantHubs[i], d.Destination)
		assert.Equal(t, "JFK", d.Origin)
		assert.NotEmpty(t, d.DestinationCity)
		assert.NotEmpty(t, d.DestinationCountry)
		assert.NotEmpty(t, d.ImageURL)
		assert.Equal(t, "320.50", d.Price)
		assert.Equal(t, "CyberWings", d.Airline)
		assert.Equal(t, "2026-02-05", d.DepartureDate)
	}
	assert.Equal(t, "London", deals[0].DestinationCity)
}

func TestTrendingDeals_ExcludesOrigin(t *testing.T) {
	o, gw, _ := newTestOrchestrator(t)
	gw.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).AnyTimes()

	for _, origin := range []string{"LHR", "cdg", "JFK", ""} {
		t.Run(origin, func(t *testing.T) {
			deals := o.TrendingDeals(context.Background(), origin)
			assert.LessOrEqual(t, len(deals), DefaultDealsMax)
			for _, d := range deals {
				assert.NotEqual(t, d.Origin, d.Destination)
			}
		})
	}
}

func TestTrendingDeals_DropsFailedCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	search := func(_ context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
		switch req.Destination {
		case "CDG":
			return nil, errors.New("search failed")
		case "DXB":
			return []domain.FlightOffer{}, nil
		case "HND":
			panic("unexpected payload")
		}
		return []domain.FlightOffer{
			createTestOffer("a", "900", "Alpha", "PT9H", 1, ""),
			createTestOffer("b", "not-priced", "Beta", "PT9H", 1, ""),
			createTestOffer("c", "610.25", "Gamma", "PT9H", 1, ""),
		}, nil
	}
	o := NewOrchestrator(NewMockGatewayPort(ctrl), &OrchestratorConfig{
		Clock:      timeutil.NewMockClock(testNow),
		DealSearch: search,
	})

	deals := o.TrendingDeals(context.Background(), "JFK")

	require.Len(t, deals, 2)
	assert.Equal(t, "LHR", deals[0].Destination)
	assert.Equal(t, "SIN", deals[1].Destination)
	assert.Equal(t, "610.25", deals[0].Price)
	assert.Equal(t, "Gamma", deals[0].Airline)
}

func TestTrendingDeals_ConfiguredLimitAndLeadDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	var calls atomic.Int32
	o := NewOrchestrator(NewMockGatewayPort(ctrl), &OrchestratorConfig{
		Clock: timeutil.NewMockClock(testNow),
		Deals: DealsConfig{Max: 2, LeadDays: 7},
		DealSearch: func(_ context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
			calls.Add(1)
			assert.Equal(t, "2026-01-22", req.DepartureDate)
			return []domain.FlightOffer{createTestOffer("x", "10", "A", "PT1H", 1, "")}, nil
		},
	})

	deals := o.TrendingDeals(context.Background(), "LHR")

	require.Len(t, deals, 2)
	assert.Equal(t, "CDG", deals[0].Destination)
	assert.Equal(t, "DXB", deals[1].Destination)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTrendingDeals_CandidateTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := NewOrchestrator(NewMockGatewayPort(ctrl), &OrchestratorConfig{
		Clock: timeutil.NewMockClock(testNow),
		Deals: DealsConfig{CandidateTimeout: 50 * time.Millisecond},
		DealSearch: func(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
			if req.Destination == "LHR" {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return []domain.FlightOffer{createTestOffer("x", "10", "A", "PT1H", 1, "")}, nil
		},
	})

	start := time.Now()
	deals := o.TrendingDeals(context.Background(), "JFK")

	assert.Less(t, time.Since(start), 2*time.Second)
	require.Len(t, deals, 4)
	assert.Equal(t, "CDG", deals[0].Destination)
}

func TestCheapestOffer(t *testing.T) {
	_, ok := CheapestOffer(nil)
	assert.False(t, ok)

	unpriced := []domain.FlightOffer{{ID: "first", TotalAmount: "?"}, {ID: "second", TotalAmount: "n/a"}}
	best, ok := CheapestOffer(unpriced)
	require.True(t, ok)
	assert.Equal(t, "first", best.ID)

	best, _ = CheapestOffer([]domain.FlightOffer{{ID: "a", TotalAmount: "5"}, {ID: "b", TotalAmount: "4.99"}})
	assert.Equal(t, "b", best.ID)
}

func TestDealsConfig_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultDealsConfig(), DealsConfig{}.withDefaults())
	assert.Equal(t, 3, DealsConfig{Max: 3}.withDefaults().Max)
}
