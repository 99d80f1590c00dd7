package http

import (
	"github.com/neon-travel/booking-gateway/internal/domain"
)

// StaysResponse is the stays search response.
type StaysResponse struct {
	Offers []domain.StayOffer `json:"offers"`
	Total  int                `json:"total"`
}

// CarsResponse is the car search response.
type CarsResponse struct {
	Offers []domain.CarOffer `json:"offers"`
	Total  int               `json:"total"`
}

// SecurityResponse is the security detail search response.
type SecurityResponse struct {
	Offers []domain.SecurityOffer `json:"offers"`
	Total  int                    `json:"total"`
}

// ExperiencesResponse lists curated experiences.
type ExperiencesResponse struct {
	Experiences []domain.ExperienceOffer `json:"experiences"`
	Total       int                      `json:"total"`
}

// PlacesResponse lists place suggestions.
type PlacesResponse struct {
	Places []domain.Place `json:"places"`
}

// DealsResponse lists trending destination deals from an origin.
type DealsResponse struct {
	Origin string                   `json:"origin"`
	Deals  []domain.DestinationDeal `json:"deals"`
}

// ConvertResponse is a display currency conversion.
type ConvertResponse struct {
	Amount    string `json:"amount" example:"450.00"`
	From      string `json:"from" example:"USD"`
	To        string `json:"to" example:"GBP"`
	Converted string `json:"converted" example:"355.50"`
}

// SessionResponse describes the mock auth state of a session.
type SessionResponse struct {
	SessionID     string       `json:"sessionId"`
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// OrdersResponse lists a session's orders, newest first.
type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
}

// GatewayPlaceDTO is a place suggestion in the aggregator field names.
type GatewayPlaceDTO struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
}

// GatewayOffersDTO wraps flight offers on the gateway surface.
type GatewayOffersDTO struct {
	Offers []domain.FlightOffer `json:"offers"`
}

// GatewayResultsDTO wraps stays results on the gateway surface.
type GatewayResultsDTO struct {
	Results []domain.StayResult `json:"results"`
}
