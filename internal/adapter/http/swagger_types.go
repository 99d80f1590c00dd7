// Package http provides swagger type definitions for API documentation.
// These types mirror domain and usecase types so swag can render embedded and
// tagged-variant fields.
package http

import "github.com/neon-travel/booking-gateway/internal/domain"

// SwaggerFlightSearchResponse represents the flight search API response.
// @Description Flight offers after filtering, sorting and display conversion
type SwaggerFlightSearchResponse struct {
	// Offers contains the filtered and sorted offers
	Offers []SwaggerDisplayOffer `json:"offers"`

	// Facets describe the unfiltered result set
	Facets SwaggerFacets `json:"facets"`

	// Total is the number of offers returned
	Total int `json:"total" example:"3"`
}

// SwaggerDisplayOffer is a flight offer with its display fields inlined.
// @Description Flight offer in aggregator field names plus presentation fields
type SwaggerDisplayOffer struct {
	ID            string                  `json:"id" example:"off_mock_2"`
	TotalAmount   string                  `json:"total_amount" example:"320.50"`
	TotalCurrency string                  `json:"total_currency" example:"USD"`
	Owner         domain.Carrier          `json:"owner"`
	Passengers    []domain.OfferPassenger `json:"passengers"`
	Slices        []domain.Slice          `json:"slices"`

	// DisplayAmount is TotalAmount converted to DisplayCurrency
	DisplayAmount   string `json:"display_amount" example:"294.86"`
	DisplayCurrency string `json:"display_currency" example:"EUR"`

	// Stops is the number of stops of the first slice
	Stops int `json:"stops" example:"0"`

	Duration   SwaggerDurationInfo `json:"duration_info"`
	CabinClass string              `json:"cabin" example:"economy"`
}

// SwaggerDurationInfo contains flight duration information.
// @Description Flight duration information
type SwaggerDurationInfo struct {
	// TotalMinutes is the first slice duration in minutes
	TotalMinutes int `json:"totalMinutes" example:"495"`

	// Formatted is a human-readable duration string
	Formatted string `json:"formatted" example:"8h 15m"`
}

// SwaggerFacets lists the filter options of a result set.
// @Description Filter options of the unfiltered result set
type SwaggerFacets struct {
	Airlines     []string `json:"airlines" example:"CyberWings,NeonAir,OrbitOne"`
	CabinClasses []string `json:"cabinClasses" example:"economy"`
	StopBuckets  []string `json:"stops" example:"0"`
	MaxPrice     float64  `json:"maxPrice" example:"850"`
}

// SwaggerTaggedOffer is the {type, offer} envelope of an offer snapshot.
// @Description Offer snapshot tagged with its service type
type SwaggerTaggedOffer struct {
	Type  string                 `json:"type" example:"FLIGHTS"`
	Offer map[string]interface{} `json:"offer"`
}

// SwaggerBookingRequest represents a booking submission.
// @Description Traveler details and the booked offer
type SwaggerBookingRequest struct {
	ServiceType string              `json:"serviceType" example:"FLIGHTS"`
	OfferID     string              `json:"offerId" example:"off_mock_1"`
	PassengerID string              `json:"passengerId,omitempty" example:"pas_mock_1"`
	GivenName   string              `json:"givenName" example:"Ada"`
	FamilyName  string              `json:"familyName" example:"Lovelace"`
	Email       string              `json:"email,omitempty" example:"ada@example.com"`
	Phone       string              `json:"phone,omitempty" example:"+15550123456"`
	RideDetails *domain.RideDetails `json:"rideDetails,omitempty"`
	Offer       *SwaggerTaggedOffer `json:"offer,omitempty"`
}

// SwaggerGatewayPlaces is the gateway place suggestions response.
type SwaggerGatewayPlaces struct {
	Data []GatewayPlaceDTO `json:"data"`
}

// SwaggerGatewayOffers is the gateway flight search response.
type SwaggerGatewayOffers struct {
	Data GatewayOffersDTO `json:"data"`
}

// SwaggerGatewayResults is the gateway stays search response.
type SwaggerGatewayResults struct {
	Data GatewayResultsDTO `json:"data"`
}

// SwaggerGatewayOrder is the gateway order response.
type SwaggerGatewayOrder struct {
	Data domain.Order `json:"data"`
}
