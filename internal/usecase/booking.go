package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/timeutil"
	"github.com/neon-travel/booking-gateway/internal/session"
)

// BookingService runs the booking funnel: auth gate, order creation and trip history.
type BookingService struct {
	orders   OrderCreator
	sessions *session.Store
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewBookingService creates a BookingService. A nil clock or logger falls back to the
// system clock and a no-op logger.
func NewBookingService(orders OrderCreator, sessions *session.Store, clock timeutil.Clock, log *logger.Logger) *BookingService {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BookingService{orders: orders, sessions: sessions, clock: clock, log: log}
}

// Book creates an order for the signed-in user of sessionID and prepends it to the history.
// It returns domain.ErrUnauthenticated without a signed-in user.
func (b *BookingService) Book(ctx context.Context, sessionID string, req domain.BookingRequest) (*domain.Order, error) {
	user, ok := b.sessions.User(sessionID)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if req.Email == "" {
		req.Email = user.Email
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orderReq := req.OrderRequest
	if orderReq.PassengerID == "" && req.Offer != nil {
		if flight, ok := req.Offer.Offer.(domain.FlightOffer); ok && len(flight.Passengers) > 0 {
			orderReq.PassengerID = flight.Passengers[0].ID
		}
	}

	created := b.orders.CreateOrder(ctx, orderReq)
	order := *created
	order.ServiceType = req.ServiceType
	order.CustomerName = strings.TrimSpace(req.GivenName + " " + req.FamilyName)
	order.CustomerEmail = orderReq.Email
	order.Date = b.clock.Now().UTC().Format(time.RFC3339)
	if order.CreatedAt == "" {
		order.CreatedAt = order.Date
	}
	if req.ServiceType == domain.ServiceCars {
		order.RideDetails = req.RideDetails
	}
	if req.Offer != nil && req.Offer.Offer != nil {
		price := req.Offer.Offer.Price()
		order.Amount = price.Amount
		order.Currency = price.Currency
		details, err := json.Marshal(req.Offer)
		if err != nil {
			return nil, fmt.Errorf("encode offer snapshot: %w", err)
		}
		order.Details = details
	}

	if err := b.sessions.AddOrder(sessionID, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	logger.FromContext(ctx, b.log).WithOperation(OpCreateOrder).Info().
		Str("order_id", order.ID).
		Str("booking_reference", order.BookingReference).
		Str("service_type", string(order.ServiceType)).
		Msg("Booking confirmed")

	return &order, nil
}

// Orders lists the session's orders, newest first, optionally narrowed to one service type.
// An empty serviceType lists every order.
func (b *BookingService) Orders(sessionID string, serviceType domain.ServiceType) ([]domain.Order, error) {
	if serviceType != "" && !serviceType.IsValid() {
		return nil, domain.WrapInvalidRequest("type must be one of FLIGHTS, STAYS, CARS, SECURITY, EXPERIENCE; got %q", serviceType)
	}

	all := b.sessions.Orders(sessionID)
	if serviceType == "" {
		return all, nil
	}

	out := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if o.ServiceType == serviceType {
			out = append(out, o)
		}
	}
	return out, nil
}
