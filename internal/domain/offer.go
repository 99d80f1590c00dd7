package domain

import (
	"encoding/json"
	"fmt"
)

// Offer is a priced, bookable item returned by a search.
// The concrete types are FlightOffer, StayOffer, CarOffer, SecurityOffer and ExperienceOffer;
// Kind is the discriminant used to switch over them.
type Offer interface {
	// Kind returns the service type of the offer.
	Kind() ServiceType

	// OfferID returns the render and idempotency key of the offer.
	OfferID() string

	// Price returns the display price of the offer.
	Price() Money

	// Provider returns the name of the provider or owner.
	Provider() string

	// Image returns an image reference, empty when the offer has none.
	Image() string
}

// Money is a decimal amount kept as the string the source supplied, plus its currency code.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// FlightOffer is a flight itinerary priced by the upstream aggregator.
// Field names follow the aggregator wire format so offers pass through the gateway unchanged.
type FlightOffer struct {
	ID            string           `json:"id"`
	TotalAmount   string           `json:"total_amount"`
	TotalCurrency string           `json:"total_currency"`
	Owner         Carrier          `json:"owner"`
	Passengers    []OfferPassenger `json:"passengers"`
	Slices        []Slice          `json:"slices"`
}

// Carrier identifies an airline.
type Carrier struct {
	Name          string `json:"name"`
	LogoSymbolURL string `json:"logo_symbol_url,omitempty"`
}

// OfferPassenger is a passenger slot of an offer. Its ID must be echoed back when ordering.
type OfferPassenger struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Slice is one directional leg of an itinerary.
type Slice struct {
	// Duration is an ISO-8601 duration such as "PT7H30M"
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flown leg between two airports.
type Segment struct {
	Origin           AirportRef         `json:"origin"`
	Destination      AirportRef         `json:"destination"`
	DepartingAt      string             `json:"departing_at"`
	ArrivingAt       string             `json:"arriving_at"`
	MarketingCarrier Carrier            `json:"marketing_carrier"`
	Passengers       []SegmentPassenger `json:"passengers,omitempty"`
}

// AirportRef is an airport as referenced from a segment.
type AirportRef struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

// SegmentPassenger carries per-segment passenger details such as the cabin.
type SegmentPassenger struct {
	CabinClass              string `json:"cabin_class,omitempty"`
	CabinClassMarketingName string `json:"cabin_class_marketing_name,omitempty"`
}

// Kind implements Offer.
func (f FlightOffer) Kind() ServiceType { return ServiceFlights }

// OfferID implements Offer.
func (f FlightOffer) OfferID() string { return f.ID }

// Price implements Offer.
func (f FlightOffer) Price() Money { return Money{Amount: f.TotalAmount, Currency: f.TotalCurrency} }

// Provider implements Offer.
func (f FlightOffer) Provider() string { return f.Owner.Name }

// Image implements Offer.
func (f FlightOffer) Image() string { return f.Owner.LogoSymbolURL }

// Validate checks the structural invariants of a flight offer.
func (f FlightOffer) Validate() error {
	if f.ID == "" {
		return WrapInvalidRequest("flight offer id is required")
	}
	if len(f.Slices) == 0 {
		return WrapInvalidRequest("flight offer %s has no slices", f.ID)
	}
	for i, s := range f.Slices {
		if len(s.Segments) == 0 {
			return WrapInvalidRequest("flight offer %s slice %d has no segments", f.ID, i)
		}
	}
	return nil
}

// FirstSegment returns the first segment of the first slice.
func (f FlightOffer) FirstSegment() (Segment, bool) {
	if len(f.Slices) == 0 || len(f.Slices[0].Segments) == 0 {
		return Segment{}, false
	}
	return f.Slices[0].Segments[0], true
}

// Clone returns a deep copy of the offer.
func (f FlightOffer) Clone() FlightOffer {
	out := f
	out.Passengers = append([]OfferPassenger(nil), f.Passengers...)
	out.Slices = make([]Slice, len(f.Slices))
	for i, s := range f.Slices {
		out.Slices[i] = Slice{Duration: s.Duration, Segments: make([]Segment, len(s.Segments))}
		for j, seg := range s.Segments {
			seg.Passengers = append([]SegmentPassenger(nil), seg.Passengers...)
			out.Slices[i].Segments[j] = seg
		}
	}
	return out
}

// StayOffer is an accommodation offer.
type StayOffer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight string   `json:"price_per_night"`
	Currency      string   `json:"currency"`
	Rating        float64  `json:"rating"`
	ImageURL      string   `json:"image"`
	Amenities     []string `json:"amenities"`
}

// Kind implements Offer.
func (s StayOffer) Kind() ServiceType { return ServiceStays }

// OfferID implements Offer.
func (s StayOffer) OfferID() string { return s.ID }

// Price implements Offer.
func (s StayOffer) Price() Money { return Money{Amount: s.PricePerNight, Currency: s.Currency} }

// Provider implements Offer.
func (s StayOffer) Provider() string { return s.Name }

// Image implements Offer.
func (s StayOffer) Image() string { return s.ImageURL }

// CarOffer is a car rental offer.
type CarOffer struct {
	ID          string `json:"id"`
	Model       string `json:"model"`
	Brand       string `json:"brand"`
	Type        string `json:"type"`
	PricePerDay string `json:"price_per_day"`
	Currency    string `json:"currency"`
	ImageURL    string `json:"image"`
	Seats       int    `json:"seats"`
}

// Kind implements Offer.
func (c CarOffer) Kind() ServiceType { return ServiceCars }

// OfferID implements Offer.
func (c CarOffer) OfferID() string { return c.ID }

// Price implements Offer.
func (c CarOffer) Price() Money { return Money{Amount: c.PricePerDay, Currency: c.Currency} }

// Provider implements Offer.
func (c CarOffer) Provider() string { return c.Brand }

// Image implements Offer.
func (c CarOffer) Image() string { return c.ImageURL }

// SecurityOffer is a security detail offer.
type SecurityOffer struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	PersonnelCount int    `json:"personnel_count"`
	HourlyRate     string `json:"hourly_rate"`
	Currency       string `json:"currency"`
	Certification  string `json:"certification"`
	ImageURL       string `json:"image"`
}

// Kind implements Offer.
func (s SecurityOffer) Kind() ServiceType { return ServiceSecurity }

// OfferID implements Offer.
func (s SecurityOffer) OfferID() string { return s.ID }

// Price implements Offer.
func (s SecurityOffer) Price() Money { return Money{Amount: s.HourlyRate, Currency: s.Currency} }

// Provider implements Offer.
func (s SecurityOffer) Provider() string { return s.Title }

// Image implements Offer.
func (s SecurityOffer) Image() string { return s.ImageURL }

// ExperienceOffer is a curated multi-day experience package.
type ExperienceOffer struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Location     string          `json:"location"`
	PriceAmount  string          `json:"price"`
	Currency     string          `json:"currency"`
	Date         string          `json:"date"`
	DurationDays int             `json:"duration_days"`
	ImageURL     string          `json:"image"`
	Tag          string          `json:"tag"`
	Description  string          `json:"description"`
	Itinerary    []ItineraryItem `json:"itinerary"`
	Included     []string        `json:"included"`
}

// ItineraryItem is one day of an experience itinerary.
type ItineraryItem struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Kind implements Offer.
func (e ExperienceOffer) Kind() ServiceType { return ServiceExperience }

// OfferID implements Offer.
func (e ExperienceOffer) OfferID() string { return e.ID }

// Price implements Offer.
func (e ExperienceOffer) Price() Money { return Money{Amount: e.PriceAmount, Currency: e.Currency} }

// Provider implements Offer.
func (e ExperienceOffer) Provider() string { return e.Title }

// Image implements Offer.
func (e ExperienceOffer) Image() string { return e.ImageURL }

// Ensure all offer variants implement Offer at compile time.
var (
	_ Offer = FlightOffer{}
	_ Offer = StayOffer{}
	_ Offer = CarOffer{}
	_ Offer = SecurityOffer{}
	_ Offer = ExperienceOffer{}
)

// TaggedOffer is the JSON envelope of an Offer: {"type": "...", "offer": {...}}.
type TaggedOffer struct {
	Offer Offer
}

type taggedOfferJSON struct {
	Type  ServiceType     `json:"type"`
	Offer json.RawMessage `json:"offer"`
}

// MarshalJSON implements json.Marshaler.
func (t TaggedOffer) MarshalJSON() ([]byte, error) {
	if t.Offer == nil {
		return []byte("null"), nil
	}
	raw, err := json.Marshal(t.Offer)
	if err != nil {
		return nil, err
	}
	return json.Marshal(taggedOfferJSON{Type: t.Offer.Kind(), Offer: raw})
}

// UnmarshalJSON implements json.Unmarshaler, decoding the offer by its type tag.
func (t *TaggedOffer) UnmarshalJSON(data []byte) error {
	var env taggedOfferJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	offer, err := newOfferOfKind(env.Type)
	if err != nil {
		return err
	}

	switch o := offer.(type) {
	case *FlightOffer:
		err = json.Unmarshal(env.Offer, o)
		t.Offer = *o
	case *StayOffer:
		err = json.Unmarshal(env.Offer, o)
		t.Offer = *o
	case *CarOffer:
		err = json.Unmarshal(env.Offer, o)
		t.Offer = *o
	case *SecurityOffer:
		err = json.Unmarshal(env.Offer, o)
		t.Offer = *o
	case *ExperienceOffer:
		err = json.Unmarshal(env.Offer, o)
		t.Offer = *o
	}
	return err
}

func newOfferOfKind(kind ServiceType) (any, error) {
	switch kind {
	case ServiceFlights:
		return &FlightOffer{}, nil
	case ServiceStays:
		return &StayOffer{}, nil
	case ServiceCars:
		return &CarOffer{}, nil
	case ServiceSecurity:
		return &SecurityOffer{}, nil
	case ServiceExperience:
		return &ExperienceOffer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown offer type %q", ErrInvalidRequest, kind)
	}
}

// TagOffers wraps a list of concrete offers into envelopes.
func TagOffers[T Offer](offers []T) []TaggedOffer {
	out := make([]TaggedOffer, len(offers))
	for i, o := range offers {
		out[i] = TaggedOffer{Offer: o}
	}
	return out
}
