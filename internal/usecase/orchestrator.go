package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/neon-travel/booking-gateway/internal/catalog"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

// Default times of day applied to mock segments whose timestamps carry no time.
const (
	defaultMockDeparture = "10:00:00"
	defaultMockArrival   = "14:00:00"
	defaultMockOrigin    = "JFK"
	defaultMockDest      = "LHR"
)

// MinPlaceQueryLength is the shortest query sent for place suggestions.
const MinPlaceQueryLength = 2

// Stay date defaults.
const (
	defaultStayNights       = 2
	defaultCheckInMonthsOut = 1
)

// FlightSearchFunc runs one flight search for trending deals.
type FlightSearchFunc func(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error)

// OrchestratorConfig contains optional collaborators for the Orchestrator.
type OrchestratorConfig struct {
	Clock   timeutil.Clock
	Logger  *logger.Logger
	Metrics *metrics.Recorder
	Deals   DealsConfig

	// DealSearch replaces the per-hub flight search of TrendingDeals
	DealSearch FlightSearchFunc
}

// Orchestrator is the client-facing search layer. It applies the fallback-to-mock policy
// so callers receive usable results whatever the upstream does.
type Orchestrator struct {
	gateway    GatewayPort
	clock      timeutil.Clock
	log        *logger.Logger
	metrics    *metrics.Recorder
	deals      DealsConfig
	dealSearch FlightSearchFunc
}

// NewOrchestrator creates an Orchestrator over gateway.
// If config is nil, the system clock, a no-op logger and default deal settings are used.
func NewOrchestrator(gateway GatewayPort, config *OrchestratorConfig) *Orchestrator {
	o := &Orchestrator{
		gateway: gateway,
		clock:   timeutil.NewRealClock(),
		log:     logger.Nop(),
		metrics: metrics.Nop(),
		deals:   DefaultDealsConfig(),
	}
	if config != nil {
		if config.Clock != nil {
			o.clock = config.Clock
		}
		if config.Logger != nil {
			o.log = config.Logger
		}
		if config.Metrics != nil {
			o.metrics = config.Metrics
		}
		o.deals = config.Deals.withDefaults()
		o.dealSearch = config.DealSearch
	}
	if o.dealSearch == nil {
		o.dealSearch = func(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
			return o.SearchFlights(ctx, req), nil
		}
	}
	return o
}

// FlightAttempt is the raw outcome of one gateway flight search.
type FlightAttempt struct {
	Offers []domain.FlightOffer
	Err    error
}

// FallbackReason returns why the attempt cannot be used, or "" when it can.
func (a FlightAttempt) FallbackReason() string {
	if a.Err == nil && len(a.Offers) > 0 {
		return ""
	}
	return outcomeOf(a.Err, len(a.Offers) == 0)
}

// SearchFlights normalizes req, queries the gateway and falls back to the mock
// catalog on any failure or an empty result. It always returns offers.
func (o *Orchestrator) SearchFlights(ctx context.Context, req domain.FlightSearchRequest) []domain.FlightOffer {
	req = req.Normalize()
	attempt := o.AttemptFlights(ctx, req)

	if reason := attempt.FallbackReason(); reason != "" {
		o.metrics.IncFallback(OpSearchFlights, reason)
		logger.FromContext(ctx, o.log).WithOperation(OpSearchFlights).Warn().
			Err(attempt.Err).
			Str("reason", reason).
			Str("origin", req.Origin).
			Str("destination", req.Destination).
			Msg("Flight search fell back to mock offers")
	}
	return ResolveFlightsOrFallback(attempt, req)
}

// AttemptFlights runs one gateway flight search without applying any fallback.
func (o *Orchestrator) AttemptFlights(ctx context.Context, req domain.FlightSearchRequest) FlightAttempt {
	offers, err := o.gateway.SearchFlights(ctx, req)
	return FlightAttempt{Offers: offers, Err: err}
}

// ResolveFlightsOrFallback returns the attempt's offers when it succeeded with results,
// otherwise the mock offers rewritten for req.
func ResolveFlightsOrFallback(attempt FlightAttempt, req domain.FlightSearchRequest) []domain.FlightOffer {
	if attempt.FallbackReason() == "" {
		return attempt.Offers
	}
	return MockFlightsFor(req)
}

// MockFlightsFor returns the mock offers with segment times moved onto req's departure date
// and airports set to req's codes. Without a departure date the mocks are returned as is.
func MockFlightsFor(req domain.FlightSearchRequest) []domain.FlightOffer {
	offers := catalog.MockFlights()
	if req.DepartureDate == "" {
		return offers
	}

	origin := orDefault(req.Origin, defaultMockOrigin)
	destination := orDefault(req.Destination, defaultMockDest)

	for i := range offers {
		for j := range offers[i].Slices {
			for k := range offers[i].Slices[j].Segments {
				seg := &offers[i].Slices[j].Segments[k]
				seg.DepartingAt = req.DepartureDate + "T" + timeOfDay(seg.DepartingAt, defaultMockDeparture)
				seg.ArrivingAt = req.DepartureDate + "T" + timeOfDay(seg.ArrivingAt, defaultMockArrival)
				seg.Origin.IATACode = origin
				seg.Destination.IATACode = destination
			}
		}
	}
	return offers
}

func timeOfDay(ts, fallback string) string {
	if i := strings.Index(ts, "T"); i >= 0 {
		return ts[i+1:]
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// SearchStays resolves dates and coordinates, queries the gateway and maps results to offers.
// On gateway failure it returns the mock stays relabeled with the requested location.
// It fails only when an explicit date is not YYYY-MM-DD.
func (o *Orchestrator) SearchStays(ctx context.Context, req domain.StaySearchRequest) ([]domain.StayOffer, error) {
	checkIn, checkOut, err := ResolveStayDates(o.clock, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	payload := BuildStaysPayload(req, checkIn, checkOut)
	results, err := o.gateway.SearchStays(ctx, payload)
	if err != nil {
		o.metrics.IncFallback(OpSearchStays, outcomeOf(err, false))
		logger.FromContext(ctx, o.log).WithOperation(OpSearchStays).Warn().
			Err(err).
			Str("location", req.Location).
			Msg("Stays search fell back to mock offers")
		return MockStaysFor(req.Location), nil
	}
	return MapStayResults(results, req.Location), nil
}

// ResolveStayDates applies the stay date defaults: no check-in means one month from today,
// and a missing check-out is two days after check-in.
func ResolveStayDates(clock timeutil.Clock, checkIn, checkOut string) (string, string, error) {
	if checkIn == "" {
		checkIn = timeutil.MonthsFromToday(clock, defaultCheckInMonthsOut)
	} else if _, err := timeutil.ParseDate(checkIn); err != nil {
		return "", "", domain.WrapInvalidRequest("checkIn must be YYYY-MM-DD, got %q", checkIn)
	}

	if checkOut == "" {
		out, err := timeutil.AddDays(checkIn, defaultStayNights)
		if err != nil {
			return "", "", domain.WrapInvalidRequest("checkIn must be YYYY-MM-DD, got %q", checkIn)
		}
		return checkIn, out, nil
	}
	if _, err := timeutil.ParseDate(checkOut); err != nil {
		return "", "", domain.WrapInvalidRequest("checkOut must be YYYY-MM-DD, got %q", checkOut)
	}
	return checkIn, checkOut, nil
}

// BuildStaysPayload builds the upstream geographic search for req.
func BuildStaysPayload(req domain.StaySearchRequest, checkIn, checkOut string) domain.StaysSearchPayload {
	guests := req.Guests
	if guests < 1 {
		guests = domain.DefaultGuests
	}
	return domain.StaysSearchPayload{
		Location: domain.StayLocation{
			Radius:                domain.Radius{Value: catalog.DefaultSearchRadius, Unit: "km"},
			GeographicCoordinates: catalog.Coordinates(req.Location),
		},
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Rooms:        domain.DefaultRooms,
		Guests:       domain.AdultGuests(guests),
	}
}

// MapStayResults converts upstream results to offers, filling defaults for sparse fields.
func MapStayResults(results []domain.StayResult, location string) []domain.StayOffer {
	offers := make([]domain.StayOffer, 0, len(results))
	for _, r := range results {
		offers = append(offers, mapStayResult(r, location))
	}
	return offers
}

func mapStayResult(r domain.StayResult, location string) domain.StayOffer {
	offer := domain.StayOffer{
		ID:            r.ID,
		Name:          r.Accommodation.Name,
		Location:      orDefault(location, catalog.DefaultStayLocation),
		PricePerNight: orDefault(r.CheapestRateTotalAmount, catalog.DefaultStayPrice),
		Currency:      orDefault(r.CheapestRateCurrency, catalog.DefaultStayCurrency),
		Rating:        r.Accommodation.Rating,
		ImageURL:      catalog.DefaultStayImage,
		Amenities:     catalog.DefaultStayAmenities(),
	}
	if offer.ID == "" {
		offer.ID = "stay_" + uuid.NewString()
	}
	if loc := r.Accommodation.Location; loc != nil && loc.Address != nil && loc.Address.CityName != "" {
		offer.Location = loc.Address.CityName
	}
	if offer.Rating == 0 {
		offer.Rating = catalog.DefaultStayRating
	}
	if len(r.Accommodation.Photos) > 0 && r.Accommodation.Photos[0].URL != "" {
		offer.ImageURL = r.Accommodation.Photos[0].URL
	}
	if len(r.Accommodation.Amenities) > 0 {
		amenities := make([]string, 0, len(r.Accommodation.Amenities))
		for _, a := range r.Accommodation.Amenities {
			if a.Description != "" {
				amenities = append(amenities, a.Description)
			}
		}
		if len(amenities) > 0 {
			offer.Amenities = amenities
		}
	}
	return offer
}

// MockStaysFor returns the mock stays, relabeled with location when one is given.
func MockStaysFor(location string) []domain.StayOffer {
	stays := catalog.MockStays()
	if location == "" {
		return stays
	}
	for i := range stays {
		stays[i].Location = location
	}
	return stays
}

// SearchPlaces returns place suggestions. Queries shorter than two characters return
// nothing without a gateway call; a gateway failure falls back to the airport table.
func (o *Orchestrator) SearchPlaces(ctx context.Context, query string) []domain.Place {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinPlaceQueryLength {
		return []domain.Place{}
	}

	places, err := o.gateway.SearchPlaces(ctx, query)
	if err != nil {
		o.metrics.IncFallback(OpSearchPlaces, outcomeOf(err, false))
		logger.FromContext(ctx, o.log).WithOperation(OpSearchPlaces).Debug().
			Err(err).
			Str("query", query).
			Msg("Place search fell back to airport table")
		return catalog.SearchAirports(query, catalog.MaxPlaceMatches)
	}
	if places == nil {
		return []domain.Place{}
	}
	return places
}

// CreateOrder books through the gateway. When the gateway call itself fails a confirmed
// order is synthesized locally, so it never fails.
func (o *Orchestrator) CreateOrder(ctx context.Context, req domain.OrderRequest) *domain.Order {
	order, err := o.gateway.CreateOrder(ctx, req)
	if err != nil || order == nil {
		o.metrics.IncFallback(OpCreateOrder, outcomeOf(err, order == nil))
		logger.FromContext(ctx, o.log).WithOperation(OpCreateOrder).Warn().
			Err(err).
			Str("offer_id", req.OfferID).
			Msg("Gateway order failed, synthesizing order")
		return SynthesizeOrder(o.clock)
	}
	return order
}

// SearchCars returns the car rental catalog.
func (o *Orchestrator) SearchCars(_ context.Context, _ domain.CarSearchRequest) []domain.CarOffer {
	return catalog.Cars()
}

// SearchSecurity returns the security catalog sized to the requested personnel count.
func (o *Orchestrator) SearchSecurity(_ context.Context, req domain.SecuritySearchRequest) []domain.SecurityOffer {
	return catalog.SecurityTeams(req.PersonnelCount)
}

// ListExperiences returns the curated experiences.
func (o *Orchestrator) ListExperiences(_ context.Context) []domain.ExperienceOffer {
	return catalog.Experiences()
}

// GetExperience returns one curated experience or domain.ErrNotFound.
func (o *Orchestrator) GetExperience(_ context.Context, id string) (domain.ExperienceOffer, error) {
	exp, ok := catalog.Experience(id)
	if !ok {
		return domain.ExperienceOffer{}, domain.ErrNotFound
	}
	return exp, nil
}

// Ensure Orchestrator implements OrderCreator at compile time.
var _ OrderCreator = (*Orchestrator)(nil)
