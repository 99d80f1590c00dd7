// Package mock provides test doubles for the booking gateway.
// Duffel is a fake upstream aggregator served over HTTP with configurable
// offers, places, stays, failures and delays.
package mock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// Upstream paths served by Duffel.
const (
	PathOfferRequests = "/air/offer_requests"
	PathPlaces        = "/places/suggestions"
	PathStays         = "/stays/search"
	PathOrders        = "/air/orders"
)

// failure is a canned error response for one path.
type failure struct {
	status int
	body   string
}

// Duffel is a configurable fake of the upstream aggregator API.
type Duffel struct {
	Server *httptest.Server
	APIKey string

	mu       sync.Mutex
	offers   []domain.FlightOffer
	places   []PlaceSuggestion
	stays    []domain.StayResult
	order    domain.Order
	failures map[string]failure
	delay    time.Duration
	calls    map[string]int
	bodies   map[string][]byte
}

// PlaceSuggestion is a place in the upstream field names.
type PlaceSuggestion struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
}

// NewDuffel starts a fake upstream that accepts apiKey as its bearer token.
// The server is closed by Close.
func NewDuffel(apiKey string) *Duffel {
	d := &Duffel{
		APIKey:   apiKey,
		order:    domain.Order{ID: "ord_fake_1", BookingReference: "DUF123", Status: domain.OrderConfirmed},
		failures: map[string]failure{},
		calls:    map[string]int{},
		bodies:   map[string][]byte{},
	}
	d.Server = httptest.NewServer(http.HandlerFunc(d.serve))
	return d
}

// URL returns the base URL of the fake upstream.
func (d *Duffel) URL() string {
	return d.Server.URL
}

// Close shuts the server down.
func (d *Duffel) Close() {
	d.Server.Close()
}

// WithOffers configures the offers returned by an offer request.
func (d *Duffel) WithOffers(offers []domain.FlightOffer) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offers = offers
	return d
}

// WithPlaces configures the place suggestions.
func (d *Duffel) WithPlaces(places ...PlaceSuggestion) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.places = places
	return d
}

// WithStays configures the stays results.
func (d *Duffel) WithStays(results []domain.StayResult) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stays = results
	return d
}

// WithOrder configures the order returned for an order creation.
func (d *Duffel) WithOrder(order domain.Order) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.order = order
	return d
}

// WithFailure makes path answer with status and body.
func (d *Duffel) WithFailure(path string, status int, body string) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures[path] = failure{status: status, body: body}
	return d
}

// WithDelay delays every response. Requests cancelled by the client return early.
func (d *Duffel) WithDelay(delay time.Duration) *Duffel {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
	return d
}

// CallCount returns the number of requests received on path.
func (d *Duffel) CallCount(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[path]
}

// LastBody returns the last request body received on path.
func (d *Duffel) LastBody(path string) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bodies[path]
}

func (d *Duffel) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	d.mu.Lock()
	d.calls[r.URL.Path]++
	d.bodies[r.URL.Path] = body
	delay := d.delay
	fail, failing := d.failures[r.URL.Path]
	d.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if r.Header.Get("Authorization") != "Bearer "+d.APIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []map[string]string{{"code": "unauthorized", "title": "Invalid access token"}},
		})
		return
	}
	if failing {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fail.status)
		_, _ = io.WriteString(w, fail.body)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == PathOfferRequests:
		offers := d.offers
		if offers == nil {
			offers = []domain.FlightOffer{}
		}
		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"offers": offers}})
	case r.Method == http.MethodGet && r.URL.Path == PathPlaces:
		places := d.places
		if places == nil {
			places = []PlaceSuggestion{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": places})
	case r.Method == http.MethodPost && r.URL.Path == PathStays:
		results := d.stays
		if results == nil {
			results = []domain.StayResult{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"results": results}})
	case r.Method == http.MethodPost && r.URL.Path == PathOrders:
		writeJSON(w, http.StatusCreated, map[string]any{"data": d.order})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"errors": []map[string]string{{"code": "not_found", "title": "Resource not found"}},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SampleOffers returns count offers from origin to destination departing on date.
// Prices rise by 50 per offer starting at 199.00 USD; durations shorten by 15 minutes.
func SampleOffers(origin, destination, date string, count int) []domain.FlightOffer {
	airlines := []string{"NeonAir", "CyberWings", "OrbitOne"}
	offers := make([]domain.FlightOffer, count)
	for i := range offers {
		airline := airlines[i%len(airlines)]
		offers[i] = domain.FlightOffer{
			ID:            fmt.Sprintf("off_live_%d", i+1),
			TotalAmount:   fmt.Sprintf("%.2f", 199.0+float64(i)*50),
			TotalCurrency: "USD",
			Owner:         domain.Carrier{Name: airline},
			Passengers:    []domain.OfferPassenger{{ID: fmt.Sprintf("pas_live_%d", i+1), Type: domain.PassengerTypeAdult}},
			Slices: []domain.Slice{{
				Duration: fmt.Sprintf("PT%dH%dM", 8-(i*15)/60, 45-(i*15)%60),
				Segments: []domain.Segment{{
					Origin:           domain.AirportRef{IATACode: origin},
					Destination:      domain.AirportRef{IATACode: destination},
					DepartingAt:      fmt.Sprintf("%sT%02d:00:00", date, 8+i),
					ArrivingAt:       fmt.Sprintf("%sT%02d:45:00", date, 16+i%8),
					MarketingCarrier: domain.Carrier{Name: airline},
				}},
			}},
		}
	}
	return offers
}
