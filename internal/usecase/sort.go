package usecase

import (
	"math"
	"sort"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// SortOffers orders offers by the given option using a stable sort.
//
// Sort options:
//   - SortByPrice: ascending total amount (unparseable amounts last)
//   - SortByDuration: ascending first-slice ISO-8601 duration (missing parts count as zero)
//   - SortNone or an unknown option: input order
//
// Behavior:
//   - Sorting twice yields the same order
//   - Does NOT mutate the input slice
func SortOffers(offers []domain.FlightOffer, sortBy SortOption) []domain.FlightOffer {
	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return priceKey(result[i]) < priceKey(result[j])
		})
	case SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return durationKey(result[i]) < durationKey(result[j])
		})
	}

	return result
}

func priceKey(o domain.FlightOffer) float64 {
	if v, ok := parseAmount(o.TotalAmount); ok {
		return v
	}
	return math.Inf(1)
}

func durationKey(o domain.FlightOffer) int {
	if len(o.Slices) == 0 {
		return 0
	}
	return domain.DurationMinutes(o.Slices[0].Duration)
}
