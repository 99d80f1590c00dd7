package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
)

// Gateway operation names used in logs and metrics.
const (
	OpSearchFlights = "search_flights"
	OpSearchPlaces  = "search_places"
	OpSearchStays   = "search_stays"
	OpCreateOrder   = "create_order"
	OpTrendingDeals = "trending_deals"
)

// Gateway is the stateless proxy in front of the upstream aggregator.
// Search failures come back as *domain.GatewayError; order failures are absorbed.
type Gateway struct {
	upstream domain.Upstream
	log      *logger.Logger
	metrics  *metrics.Recorder
	clock    timeutil.Clock
}

// NewGateway creates a Gateway. A nil logger, recorder or clock falls back to a no-op
// logger, an unregistered recorder and the system clock.
func NewGateway(upstream domain.Upstream, log *logger.Logger, rec *metrics.Recorder, clock timeutil.Clock) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = metrics.Nop()
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Gateway{upstream: upstream, log: log, metrics: rec, clock: clock}
}

// SearchFlights implements GatewayPort.
func (g *Gateway) SearchFlights(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error) {
	if !g.upstream.Configured() {
		return nil, g.notConfigured(ctx, OpSearchFlights)
	}

	start := time.Now()
	offers, err := g.upstream.CreateOfferRequest(ctx, req.Normalize())
	g.observe(ctx, OpSearchFlights, err, len(offers) == 0, start)
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// SearchPlaces implements GatewayPort.
func (g *Gateway) SearchPlaces(ctx context.Context, query string) ([]domain.Place, error) {
	if !g.upstream.Configured() {
		return nil, g.notConfigured(ctx, OpSearchPlaces)
	}

	start := time.Now()
	places, err := g.upstream.PlaceSuggestions(ctx, query)
	g.observe(ctx, OpSearchPlaces, err, len(places) == 0, start)
	if err != nil {
		return nil, err
	}
	return places, nil
}

// SearchStays implements GatewayPort.
func (g *Gateway) SearchStays(ctx context.Context, payload domain.StaysSearchPayload) ([]domain.StayResult, error) {
	if !g.upstream.Configured() {
		return nil, g.notConfigured(ctx, OpSearchStays)
	}

	start := time.Now()
	results, err := g.upstream.SearchStays(ctx, payload)
	g.observe(ctx, OpSearchStays, err, len(results) == 0, start)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CreateOrder implements GatewayPort. Without a credential, or when the upstream fails,
// it returns a locally synthesized confirmed order and a nil error.
func (g *Gateway) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	log := logger.FromContext(ctx, g.log).WithOperation(OpCreateOrder)

	if !g.upstream.Configured() {
		g.metrics.ObserveUpstream(OpCreateOrder, metrics.OutcomeNotConfigured, 0)
		g.metrics.IncFallback(OpCreateOrder, metrics.OutcomeNotConfigured)
		log.Info().Str("offer_id", req.OfferID).Msg("No upstream credential, synthesizing order")
		return SynthesizeOrder(g.clock), nil
	}

	start := time.Now()
	order, err := g.upstream.CreateOrder(ctx, req)
	g.observe(ctx, OpCreateOrder, err, false, start)
	if err != nil || order == nil {
		g.metrics.IncFallback(OpCreateOrder, outcomeOf(err, order == nil))
		log.Warn().Err(err).Str("offer_id", req.OfferID).Msg("Order creation failed, synthesizing order")
		return SynthesizeOrder(g.clock), nil
	}
	return order, nil
}

func (g *Gateway) notConfigured(ctx context.Context, op string) error {
	g.metrics.ObserveUpstream(op, metrics.OutcomeNotConfigured, 0)
	logger.FromContext(ctx, g.log).WithOperation(op).Debug().Msg("No upstream credential set")
	return domain.NewNotConfiguredError()
}

// observe records the call outcome and logs upstream failures with their status and body.
func (g *Gateway) observe(ctx context.Context, op string, err error, empty bool, start time.Time) {
	elapsed := time.Since(start)
	g.metrics.ObserveUpstream(op, outcomeOf(err, empty), elapsed)
	if err == nil {
		return
	}

	event := logger.FromContext(ctx, g.log).WithOperation(op).Warn().
		Err(err).
		Int64("duration_ms", elapsed.Milliseconds())
	if ge, ok := domain.AsGatewayError(err); ok {
		event = event.Str("kind", string(ge.Kind)).Int("upstream_status", ge.StatusCode)
		if len(ge.Details) > 0 {
			event = event.RawJSON("details", ge.Details)
		}
	}
	event.Msg("Upstream call failed")
}

// outcomeOf classifies a call result for metrics and fallback reasons.
func outcomeOf(err error, empty bool) string {
	switch {
	case err == nil && empty:
		return metrics.OutcomeEmpty
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrUpstreamNotConfigured):
		return metrics.OutcomeNotConfigured
	case domain.IsUpstreamValidation(err):
		return metrics.OutcomeValidation
	default:
		return metrics.OutcomeUnavailable
	}
}

// Ensure Gateway implements GatewayPort at compile time.
var _ GatewayPort = (*Gateway)(nil)
