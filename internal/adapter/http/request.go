// Package http provides the HTTP handler layer of the booking gateway: the gateway
// surface and the booking API. It handles request parsing, validation, response
// formatting, and error mapping.
package http

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of adult passengers (1-9, default 1)
	Passengers int `json:"passengers"`

	// CabinClass is economy, premium_economy, business or first (optional)
	CabinClass string `json:"cabinClass,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price or duration. Empty keeps the upstream order.
	SortBy string `json:"sortBy,omitempty"`

	// DisplayCurrency converts displayed prices (USD, EUR, GBP, JPY, NGN)
	DisplayCurrency string `json:"displayCurrency,omitempty" example:"EUR"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"maxPrice": 500, "stops": ["0","1"], "cabinClasses": ["economy"], "airlines": ["NeonAir"]}
type FilterDTO struct {
	// MaxPrice drops offers priced above this amount. Omitted means no ceiling.
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"500"`

	// Stops keeps offers in these stop buckets: "0", "1", "2+"
	Stops []string `json:"stops,omitempty" example:"0,1"`

	// CabinClasses keeps offers whose first segment is in one of these cabins
	CabinClasses []string `json:"cabinClasses,omitempty" example:"economy"`

	// Airlines keeps offers owned by one of these airlines (exact name)
	Airlines []string `json:"airlines,omitempty" example:"NeonAir"`
}

// SearchStaysRequest represents the request body for stays search.
type SearchStaysRequest struct {
	// Location is free text such as "Paris, France"
	Location string `json:"location" example:"Paris, France"`

	// CheckIn is YYYY-MM-DD; omitted means one month from today
	CheckIn string `json:"checkIn,omitempty"`

	// CheckOut is YYYY-MM-DD; omitted means two nights after check-in
	CheckOut string `json:"checkOut,omitempty"`

	// Guests is the number of adult guests (default 2)
	Guests int `json:"guests,omitempty" example:"2"`
}

// SearchCarsRequest represents the request body for car rental search.
type SearchCarsRequest struct {
	PickupLocation string `json:"pickupLocation" example:"Lagos"`
	PickupDate     string `json:"pickupDate,omitempty"`
	CarType        string `json:"carType,omitempty" example:"suv"`
	Days           int    `json:"days,omitempty" example:"3"`
}

// SearchSecurityRequest represents the request body for security detail search.
type SearchSecurityRequest struct {
	Location       string `json:"location" example:"Lagos"`
	Date           string `json:"date,omitempty"`
	SecurityType   string `json:"securityType,omitempty" example:"executive"`
	PersonnelCount int    `json:"personnelCount,omitempty" example:"4"`
}

// LoginRequest represents the mock sign-in body. No password is checked.
type LoginRequest struct {
	Email string `json:"email" example:"traveler@example.com"`
}

// SignupRequest represents the mock sign-up body.
type SignupRequest struct {
	Email     string `json:"email" example:"traveler@example.com"`
	FirstName string `json:"firstName" example:"Ada"`
	LastName  string `json:"lastName" example:"Lovelace"`
}

// Request limits.
const (
	maxPassengers = 9
	maxGuests     = 20
	maxRentalDays = 90
	maxPersonnel  = 50
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid sort options. Empty keeps the upstream order.
var validSortOptions = map[string]bool{
	"price":    true,
	"duration": true,
	"":         true,
}

// Valid stop buckets.
var validStopBuckets = map[string]bool{
	"0":  true,
	"1":  true,
	"2+": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// result returns errs as an error, or nil when it holds none.
func (v *ValidationErrors) result() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate validates the search request and normalizes codes and enums in place.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateAirportCode(errs, "origin", r.Origin)
	r.Destination = validateAirportCode(errs, "destination", r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
	} else {
		validateDate(errs, "departureDate", r.DepartureDate)
	}

	if r.Passengers < 0 {
		errs.Add("passengers", "passengers must be at least 1")
	} else if r.Passengers > maxPassengers {
		errs.Add("passengers", "passengers cannot exceed 9")
	}

	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	if r.CabinClass != "" && !domain.IsValidCabinClass(r.CabinClass) {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}

	r.SortBy = strings.ToLower(strings.TrimSpace(r.SortBy))
	if !validSortOptions[r.SortBy] {
		errs.Add("sortBy", "sortBy must be one of: price, duration")
	}

	r.DisplayCurrency = strings.ToUpper(strings.TrimSpace(r.DisplayCurrency))
	if r.DisplayCurrency != "" && !domain.IsKnownCurrency(r.DisplayCurrency) {
		errs.Add("displayCurrency", "displayCurrency must be one of: "+strings.Join(domain.SupportedCurrencies(), ", "))
	}

	r.validateFilters(errs)

	return errs.result()
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}

	for i, stop := range r.Filters.Stops {
		stop = strings.TrimSpace(stop)
		if !validStopBuckets[stop] {
			errs.Add(fmt.Sprintf("filters.stops[%d]", i), `stops must be one of: "0", "1", "2+"`)
		}
		r.Filters.Stops[i] = stop
	}

	for i, cabin := range r.Filters.CabinClasses {
		cabin = strings.ToLower(strings.TrimSpace(cabin))
		if !domain.IsValidCabinClass(cabin) {
			errs.Add(fmt.Sprintf("filters.cabinClasses[%d]", i), "cabin class must be one of: economy, premium_economy, business, first")
		}
		r.Filters.CabinClasses[i] = cabin
	}

	for i, airline := range r.Filters.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline must not be empty")
		}
	}
}

// Validate validates the stays search request.
func (r *SearchStaysRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Location = strings.TrimSpace(r.Location)
	if r.CheckIn != "" {
		validateDate(errs, "checkIn", r.CheckIn)
	}
	if r.CheckOut != "" {
		validateDate(errs, "checkOut", r.CheckOut)
	}
	if r.CheckIn != "" && r.CheckOut != "" && !errs.HasErrors() && r.CheckOut <= r.CheckIn {
		errs.Add("checkOut", "checkOut must be after checkIn")
	}

	if r.Guests < 0 {
		errs.Add("guests", "guests must be at least 1")
	} else if r.Guests > maxGuests {
		errs.Add("guests", "guests cannot exceed 20")
	}

	return errs.result()
}

// Validate validates the car search request.
func (r *SearchCarsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.PickupLocation = strings.TrimSpace(r.PickupLocation)
	if r.PickupLocation == "" {
		errs.Add("pickupLocation", "pickupLocation is required")
	}
	if r.PickupDate != "" {
		validateDate(errs, "pickupDate", r.PickupDate)
	}
	if r.Days < 0 || r.Days > maxRentalDays {
		errs.Add("days", "days must be between 1 and 90")
	}

	return errs.result()
}

// Validate validates the security search request.
func (r *SearchSecurityRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		errs.Add("location", "location is required")
	}
	if r.Date != "" {
		validateDate(errs, "date", r.Date)
	}
	if r.PersonnelCount < 0 || r.PersonnelCount > maxPersonnel {
		errs.Add("personnelCount", "personnelCount must be between 1 and 50")
	}

	return errs.result()
}

// Validate validates the sign-in request.
func (r *LoginRequest) Validate() error {
	errs := &ValidationErrors{}
	r.Email = validateEmail(errs, r.Email)
	return errs.result()
}

// Validate validates the sign-up request.
func (r *SignupRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Email = validateEmail(errs, r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	if r.FirstName == "" {
		errs.Add("firstName", "firstName is required")
	}
	r.LastName = strings.TrimSpace(r.LastName)
	if r.LastName == "" {
		errs.Add("lastName", "lastName is required")
	}

	return errs.result()
}

// validateAirportCode checks a required IATA code and returns it uppercased.
func validateAirportCode(errs *ValidationErrors, field, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
	return code
}

func validateDate(errs *ValidationErrors, field, date string) {
	if !datePattern.MatchString(date) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func validateEmail(errs *ValidationErrors, email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "email is required")
		return email
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "email must be a valid email address")
	}
	return email
}
