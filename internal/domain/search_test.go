package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightSearchRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   FlightSearchRequest
		want FlightSearchRequest
	}{
		{
			name: "trims and uppercases codes",
			in:   FlightSearchRequest{Origin: " jfk ", Destination: "lhr", DepartureDate: "2026-06-15 ", Passengers: 2, CabinClass: "Business"},
			want: FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15", Passengers: 2, CabinClass: "business"},
		},
		{
			name: "applies defaults",
			in:   FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15"},
			want: FlightSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15", Passengers: 1, CabinClass: "economy"},
		},
		{
			name: "negative passengers become one",
			in:   FlightSearchRequest{Origin: "JFK", Destination: "LHR", Passengers: -3},
			want: FlightSearchRequest{Origin: "JFK", Destination: "LHR", Passengers: 1, CabinClass: "economy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestFlightSearchRequest_Validate(t *testing.T) {
	valid := func() FlightSearchRequest {
		return FlightSearchRequest{
			Origin:        "JFK",
			Destination:   "LHR",
			DepartureDate: "2026-06-15",
			Passengers:    1,
			CabinClass:    "economy",
		}
	}

	tests := []struct {
		name        string
		modify      func(*FlightSearchRequest)
		wantErr     bool
		errContains string
	}{
		{name: "valid request passes", modify: func(r *FlightSearchRequest) {}},
		{name: "bad origin", modify: func(r *FlightSearchRequest) { r.Origin = "JF" }, wantErr: true, errContains: "origin"},
		{name: "lowercase destination", modify: func(r *FlightSearchRequest) { r.Destination = "lhr" }, wantErr: true, errContains: "destination"},
		{name: "same airports", modify: func(r *FlightSearchRequest) { r.Destination = "JFK" }, wantErr: true, errContains: "must be different"},
		{name: "bad date", modify: func(r *FlightSearchRequest) { r.DepartureDate = "15/06/2026" }, wantErr: true, errContains: "departureDate"},
		{name: "too many passengers", modify: func(r *FlightSearchRequest) { r.Passengers = 10 }, wantErr: true, errContains: "passengers"},
		{name: "unknown cabin", modify: func(r *FlightSearchRequest) { r.CabinClass = "luxury" }, wantErr: true, errContains: "cabinClass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestAdultGuests(t *testing.T) {
	guests := AdultGuests(3)
	assert.Len(t, guests, 3)
	for _, g := range guests {
		assert.Equal(t, "adult", g.Type)
	}
	assert.Empty(t, AdultGuests(0))
}

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		in     string
		want   ServiceType
		wantOK bool
	}{
		{"FLIGHTS", ServiceFlights, true},
		{" stays ", ServiceStays, true},
		{"Cars", ServiceCars, true},
		{"security", ServiceSecurity, true},
		{"experience", ServiceExperience, true},
		{"boats", ServiceType("BOATS"), false},
		{"", ServiceType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseServiceType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderConfirmed.IsValid())
	assert.True(t, OrderPending.IsValid())
	assert.True(t, OrderCancelled.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
}

func TestBookingRequest_Validate(t *testing.T) {
	valid := func() BookingRequest {
		return BookingRequest{
			OrderRequest: OrderRequest{
				OfferID:    "off_1",
				GivenName:  "Ada",
				FamilyName: "Lovelace",
				Email:      "ada@example.com",
			},
			ServiceType: ServiceFlights,
		}
	}

	tests := []struct {
		name    string
		modify  func(*BookingRequest)
		wantErr bool
	}{
		{name: "valid", modify: func(b *BookingRequest) {}},
		{name: "unknown service", modify: func(b *BookingRequest) { b.ServiceType = "BOATS" }, wantErr: true},
		{name: "missing offer id", modify: func(b *BookingRequest) { b.OfferID = "" }, wantErr: true},
		{name: "missing name", modify: func(b *BookingRequest) { b.FamilyName = "" }, wantErr: true},
		{name: "missing email", modify: func(b *BookingRequest) { b.Email = "" }, wantErr: true},
		{
			name:    "offer kind mismatch",
			modify:  func(b *BookingRequest) { b.Offer = &TaggedOffer{Offer: CarOffer{ID: "car_1"}} },
			wantErr: true,
		},
		{
			name:   "matching offer snapshot",
			modify: func(b *BookingRequest) { b.Offer = &TaggedOffer{Offer: FlightOffer{ID: "off_1"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.modify(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.True(t, IsInvalidRequest(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
