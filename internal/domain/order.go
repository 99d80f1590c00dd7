package domain

import "encoding/json"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderConfirmed OrderStatus = "confirmed"
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderConfirmed, OrderPending, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a booking created in response to a booking submission. It is immutable once created.
type Order struct {
	ID               string          `json:"id"`
	BookingReference string          `json:"booking_reference"`
	Status           OrderStatus     `json:"status"`
	ServiceType      ServiceType     `json:"serviceType,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
	Documents        []OrderDocument `json:"documents,omitempty"`
	CustomerName     string          `json:"customerName,omitempty"`
	CustomerEmail    string          `json:"customerEmail,omitempty"`
	Amount           string          `json:"amount,omitempty"`
	Currency         string          `json:"currency,omitempty"`
	Date             string          `json:"date,omitempty"`
	Details          json.RawMessage `json:"details,omitempty"`
	RideDetails      *RideDetails    `json:"rideDetails,omitempty"`
}

// OrderDocument is a ticket or voucher attached to an order.
type OrderDocument struct {
	UniqueIdentifier string `json:"unique_identifier"`
}

// RideDetails is the itinerary of a car booking.
type RideDetails struct {
	PickupLocation string   `json:"pickupLocation"`
	PickupTime     string   `json:"pickupTime"`
	Stops          []string `json:"stops"`
}

// OrderRequest is the gateway order creation input.
type OrderRequest struct {
	OfferID string `json:"offerId"`

	// PassengerID links the traveler details to the passenger slot of the offer
	PassengerID string `json:"passengerId,omitempty"`

	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// BookingRequest is a booking submission from the funnel.
type BookingRequest struct {
	OrderRequest

	ServiceType ServiceType  `json:"serviceType"`
	RideDetails *RideDetails `json:"rideDetails,omitempty"`

	// Offer is a snapshot of the booked offer, stored on the order
	Offer *TaggedOffer `json:"offer,omitempty"`
}

// Validate checks a booking submission.
func (b BookingRequest) Validate() error {
	if !b.ServiceType.IsValid() {
		return WrapInvalidRequest("serviceType must be one of FLIGHTS, STAYS, CARS, SECURITY, EXPERIENCE; got %q", b.ServiceType)
	}
	if b.OfferID == "" {
		return WrapInvalidRequest("offerId is required")
	}
	if b.GivenName == "" || b.FamilyName == "" {
		return WrapInvalidRequest("givenName and familyName are required")
	}
	if b.Email == "" {
		return WrapInvalidRequest("email is required")
	}
	if b.Offer != nil && b.Offer.Offer != nil && b.Offer.Offer.Kind() != b.ServiceType {
		return WrapInvalidRequest("offer type %s does not match serviceType %s", b.Offer.Offer.Kind(), b.ServiceType)
	}
	return nil
}
