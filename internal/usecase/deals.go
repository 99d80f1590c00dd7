package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/neon-travel/booking-gateway/internal/catalog"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

// Default trending deal settings.
const (
	DefaultDealOrigin       = "JFK"
	DefaultDealsMax         = 5
	DefaultDealsLeadDays    = 21
	DefaultCandidateTimeout = 10 * time.Second
)

// DealsConfig controls the trending deal fan-out.
type DealsConfig struct {
	// Max caps the number of hubs searched
	Max int

	// LeadDays is how far ahead each candidate flight departs
	LeadDays int

	// CandidateTimeout bounds each hub search
	CandidateTimeout time.Duration
}

// DefaultDealsConfig returns the default configuration.
func DefaultDealsConfig() DealsConfig {
	return DealsConfig{
		Max:              DefaultDealsMax,
		LeadDays:         DefaultDealsLeadDays,
		CandidateTimeout: DefaultCandidateTimeout,
	}
}

func (c DealsConfig) withDefaults() DealsConfig {
	d := DefaultDealsConfig()
	if c.Max > 0 {
		d.Max = c.Max
	}
	if c.LeadDays > 0 {
		d.LeadDays = c.LeadDays
	}
	if c.CandidateTimeout > 0 {
		d.CandidateTimeout = c.CandidateTimeout
	}
	return d
}

// candidateResult holds the outcome of one hub search.
type candidateResult struct {
	Index int
	Hub   string
	Deal  *domain.DestinationDeal
	Error error
}

// TrendingDeals searches the curated hubs from origin concurrently and returns the cheapest
// offer per hub. Hubs with no offers or a failed search are dropped; the rest keep hub order.
func (o *Orchestrator) TrendingDeals(ctx context.Context, origin string) []domain.DestinationDeal {
	origin = orDefault(domain.FlightSearchRequest{Origin: origin}.Normalize().Origin, DefaultDealOrigin)
	hubs := catalog.TrendingHubs(origin, o.deals.Max)
	if len(hubs) == 0 {
		return []domain.DestinationDeal{}
	}

	departureDate := timeutil.DaysFromToday(o.clock, o.deals.LeadDays)
	log := logger.FromContext(ctx, o.log).WithOperation(OpTrendingDeals)

	// Buffered channel to prevent goroutine blocking
	resultsChan := make(chan candidateResult, len(hubs))
	var wg sync.WaitGroup

	// Scatter: one search per hub
	for i, hub := range hubs {
		wg.Add(1)
		go func(index int, h catalog.Hub) {
			defer wg.Done()
			o.searchCandidate(ctx, index, origin, h, departureDate, resultsChan)
		}(i, hub)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Gather: join on every candidate
	slots := make([]*domain.DestinationDeal, len(hubs))
	for result := range resultsChan {
		if result.Error != nil {
			log.Warn().Err(result.Error).Str("hub", result.Hub).Msg("Dropping trending deal candidate")
			continue
		}
		slots[result.Index] = result.Deal
	}

	deals := make([]domain.DestinationDeal, 0, len(hubs))
	for _, d := range slots {
		if d != nil {
			deals = append(deals, *d)
		}
	}
	return deals
}

// searchCandidate searches one hub with timeout and panic recovery.
func (o *Orchestrator) searchCandidate(ctx context.Context, index int, origin string, hub catalog.Hub, departureDate string, results chan<- candidateResult) {
	ctx, cancel := context.WithTimeout(ctx, o.deals.CandidateTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			results <- candidateResult{Index: index, Hub: hub.Code, Error: fmt.Errorf("candidate panic: %v", r)}
		}
	}()

	offers, err := o.dealSearch(ctx, domain.FlightSearchRequest{
		Origin:        origin,
		Destination:   hub.Code,
		DepartureDate: departureDate,
		Passengers:    1,
		CabinClass:    domain.DefaultCabinClass,
	})
	if err != nil {
		results <- candidateResult{Index: index, Hub: hub.Code, Error: err}
		return
	}

	cheapest, ok := CheapestOffer(offers)
	if !ok {
		results <- candidateResult{Index: index, Hub: hub.Code, Error: fmt.Errorf("no offers for %s", hub.Code)}
		return
	}

	results <- candidateResult{Index: index, Hub: hub.Code, Deal: newDeal(origin, hub, departureDate, cheapest)}
}

// CheapestOffer returns the offer with the lowest parseable total amount. When no amount
// parses the first offer is returned; ok is false only for an empty slice.
func CheapestOffer(offers []domain.FlightOffer) (domain.FlightOffer, bool) {
	if len(offers) == 0 {
		return domain.FlightOffer{}, false
	}
	best, bestPrice := offers[0], math.Inf(1)
	for _, o := range offers {
		if v, ok := parseAmount(o.TotalAmount); ok && v < bestPrice {
			best, bestPrice = o, v
		}
	}
	return best, true
}

func newDeal(origin string, hub catalog.Hub, departureDate string, offer domain.FlightOffer) *domain.DestinationDeal {
	city, country := hub.Code, ""
	if place, ok := catalog.LookupAirport(hub.Code); ok {
		city, country = place.City, place.Country
	}
	return &domain.DestinationDeal{
		ID:                 fmt.Sprintf("deal_%s_%s", origin, hub.Code),
		Origin:             origin,
		Destination:        hub.Code,
		DestinationCity:    city,
		DestinationCountry: country,
		Price:              offer.TotalAmount,
		Currency:           offer.TotalCurrency,
		ImageURL:           hub.ImageURL,
		DepartureDate:      departureDate,
		Airline:            offer.Owner.Name,
	}
}
