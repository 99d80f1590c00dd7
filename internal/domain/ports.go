package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// Upstream defines the interface to the third-party flight and stay aggregator.
// Implementations translate the aggregator wire format and classify failures as *GatewayError.
type Upstream interface {
	// Configured reports whether an API credential is set.
	Configured() bool

	// CreateOfferRequest requests priced flight offers for the given search.
	CreateOfferRequest(ctx context.Context, req FlightSearchRequest) ([]FlightOffer, error)

	// PlaceSuggestions returns place suggestions matching query.
	PlaceSuggestions(ctx context.Context, query string) ([]Place, error)

	// SearchStays runs a geographic accommodation search.
	SearchStays(ctx context.Context, payload StaysSearchPayload) ([]StayResult, error)

	// CreateOrder places an instant order for the given offer.
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
