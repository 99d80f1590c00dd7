package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// ApplyFilters returns the offers that match every criterion in filters.
//
// Behavior:
//   - An empty criterion places no restriction
//   - Offers whose amount cannot be parsed pass the price filter
//   - Does NOT mutate the input slice or its offers
//
// Narrowing any criterion never grows the result.
func ApplyFilters(offers []domain.FlightOffer, filters FlightFilters) []domain.FlightOffer {
	ceiling := PriceCeiling(offers, filters.MaxPrice)
	stopSet := buildSet(filters.Stops, false)
	cabinSet := buildSet(filters.CabinClasses, true)
	airlineSet := buildSet(filters.Airlines, false)

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if passesAllFilters(o, ceiling, stopSet, cabinSet, airlineSet) {
			result = append(result, o)
		}
	}
	return result
}

func passesAllFilters(o domain.FlightOffer, ceiling float64, stops, cabins, airlines map[string]struct{}) bool {
	if price, ok := parseAmount(o.TotalAmount); ok && price > ceiling {
		return false
	}
	if !inSet(stops, StopBucket(o)) {
		return false
	}
	if !inSet(cabins, CabinClass(o)) {
		return false
	}
	if !inSet(airlines, o.Owner.Name) {
		return false
	}
	return true
}

// PriceCeiling parses maxPrice as a decimal. An empty or unparseable value yields the
// highest parseable price in offers.
func PriceCeiling(offers []domain.FlightOffer, maxPrice string) float64 {
	if v, ok := parseAmount(maxPrice); ok {
		return v
	}
	return MaxPrice(offers)
}

// MaxPrice returns the highest parseable total amount, or +Inf when none parses.
func MaxPrice(offers []domain.FlightOffer) float64 {
	max := math.Inf(-1)
	for _, o := range offers {
		if v, ok := parseAmount(o.TotalAmount); ok && v > max {
			max = v
		}
	}
	if math.IsInf(max, -1) {
		return math.Inf(1)
	}
	return max
}

// Stops returns the number of stops of the first slice.
func Stops(o domain.FlightOffer) int {
	if len(o.Slices) == 0 || len(o.Slices[0].Segments) == 0 {
		return 0
	}
	return len(o.Slices[0].Segments) - 1
}

// StopBucket maps the stop count to "0", "1" or "2+".
func StopBucket(o domain.FlightOffer) string {
	switch n := Stops(o); {
	case n <= 0:
		return StopsDirect
	case n == 1:
		return StopsOne
	default:
		return StopsTwoOrMore
	}
}

// CabinClass returns the cabin of the first segment's first passenger, defaulting to economy.
func CabinClass(o domain.FlightOffer) string {
	seg, ok := o.FirstSegment()
	if !ok || len(seg.Passengers) == 0 || seg.Passengers[0].CabinClass == "" {
		return domain.DefaultCabinClass
	}
	return strings.ToLower(seg.Passengers[0].CabinClass)
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// buildSet creates a lookup set. A nil set places no restriction.
func buildSet(values []string, lower bool) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if lower {
			v = strings.ToLower(v)
		}
		set[v] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
