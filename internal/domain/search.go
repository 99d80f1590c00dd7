package domain

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on every wire surface.
const DateLayout = "2006-01-02"

// Default search values.
const (
	DefaultCabinClass  = "economy"
	DefaultPassengers  = 1
	DefaultGuests      = 2
	DefaultRooms       = 1
	DefaultPersonnel   = 4
	PassengerTypeAdult = "adult"
)

// FlightSearchRequest defines the parameters for a flight search.
type FlightSearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`

	// CabinClass is economy, premium_economy, business or first (default: economy)
	CabinClass string `json:"cabinClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// validCabinClasses defines the allowed cabin classes.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// IsValidAirportCode reports whether code is a 3-letter uppercase IATA code.
func IsValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// IsValidCabinClass reports whether class is a known cabin class.
func IsValidCabinClass(class string) bool {
	return validCabinClasses[class]
}

// Normalize trims and uppercases the airport codes and applies defaults.
func (r FlightSearchRequest) Normalize() FlightSearchRequest {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.DepartureDate = strings.TrimSpace(r.DepartureDate)
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	if r.CabinClass == "" {
		r.CabinClass = DefaultCabinClass
	}
	if r.Passengers < 1 {
		r.Passengers = DefaultPassengers
	}
	return r
}

// Validate checks a normalized request.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r FlightSearchRequest) Validate() error {
	if !IsValidAirportCode(r.Origin) {
		return WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", r.Origin)
	}
	if !IsValidAirportCode(r.Destination) {
		return WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", r.Destination)
	}
	if r.Origin == r.Destination {
		return WrapInvalidRequest("origin and destination must be different")
	}
	if _, err := time.Parse(DateLayout, r.DepartureDate); err != nil {
		return WrapInvalidRequest("departureDate must be a valid YYYY-MM-DD date, got %q", r.DepartureDate)
	}
	if r.Passengers < 1 || r.Passengers > 9 {
		return WrapInvalidRequest("passengers must be between 1 and 9")
	}
	if !IsValidCabinClass(r.CabinClass) {
		return WrapInvalidRequest("cabinClass must be one of: economy, premium_economy, business, first; got %q", r.CabinClass)
	}
	return nil
}

// StaySearchRequest is the user-facing stays search input.
type StaySearchRequest struct {
	// Location is free text such as "Paris, France"
	Location string `json:"location"`

	// CheckIn is YYYY-MM-DD; empty means "one month from today"
	CheckIn string `json:"checkIn,omitempty"`

	// CheckOut is YYYY-MM-DD; empty means "two days after check-in"
	CheckOut string `json:"checkOut,omitempty"`

	// Guests is the number of adult guests (default: 2)
	Guests int `json:"guests,omitempty"`
}

// StaysSearchPayload is the geographic search payload forwarded to the upstream.
type StaysSearchPayload struct {
	Location     StayLocation `json:"location"`
	CheckInDate  string       `json:"check_in_date"`
	CheckOutDate string       `json:"check_out_date"`
	Rooms        int          `json:"rooms"`
	Guests       []Guest      `json:"guests"`
}

// StayLocation is a search radius around coordinates.
type StayLocation struct {
	Radius                Radius      `json:"radius"`
	GeographicCoordinates Coordinates `json:"geographic_coordinates"`
}

// Radius is a distance with unit.
type Radius struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Guest is a guest slot of a stays search.
type Guest struct {
	Type string `json:"type"`
}

// AdultGuests returns n guest slots tagged "adult".
func AdultGuests(n int) []Guest {
	guests := make([]Guest, n)
	for i := range guests {
		guests[i] = Guest{Type: PassengerTypeAdult}
	}
	return guests
}

// StayResult is a stays search result as returned by the upstream.
type StayResult struct {
	ID                      string        `json:"id"`
	Accommodation           Accommodation `json:"accommodation"`
	CheapestRateTotalAmount string        `json:"cheapest_rate_total_amount"`
	CheapestRateCurrency    string        `json:"cheapest_rate_currency"`
}

// Accommodation describes the property of a stays result.
type Accommodation struct {
	Name      string                 `json:"name"`
	Rating    float64                `json:"rating"`
	Location  *AccommodationLocation `json:"location,omitempty"`
	Photos    []Photo                `json:"photos,omitempty"`
	Amenities []Amenity              `json:"amenities,omitempty"`
}

// AccommodationLocation holds the address of a property.
type AccommodationLocation struct {
	Address *Address `json:"address,omitempty"`
}

// Address is a postal address.
type Address struct {
	CityName string `json:"city_name"`
}

// Photo is an image of a property.
type Photo struct {
	URL string `json:"url"`
}

// Amenity is a property amenity.
type Amenity struct {
	Description string `json:"description"`
}

// CarSearchRequest is the car rental search input.
type CarSearchRequest struct {
	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate,omitempty"`
	CarType        string `json:"carType,omitempty"`
	Days           int    `json:"days,omitempty"`
}

// SecuritySearchRequest is the security detail search input.
type SecuritySearchRequest struct {
	Location       string `json:"location"`
	Date           string `json:"date,omitempty"`
	SecurityType   string `json:"securityType,omitempty"`
	PersonnelCount int    `json:"personnelCount,omitempty"`
}
