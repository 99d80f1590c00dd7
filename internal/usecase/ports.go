package usecase

import (
	"context"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=usecase

// GatewayPort is the gateway contract consumed by the Orchestrator.
// It is satisfied by the in-process Gateway and by the remote gateway client.
type GatewayPort interface {
	// SearchFlights returns priced flight offers. Zero offers is not an error.
	SearchFlights(ctx context.Context, req domain.FlightSearchRequest) ([]domain.FlightOffer, error)

	// SearchPlaces returns place suggestions for query.
	SearchPlaces(ctx context.Context, query string) ([]domain.Place, error)

	// SearchStays runs an accommodation search.
	SearchStays(ctx context.Context, payload domain.StaysSearchPayload) ([]domain.StayResult, error)

	// CreateOrder books an offer.
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// OrderCreator creates orders without surfacing upstream failures.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) *domain.Order
}
