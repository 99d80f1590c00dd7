package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// DisplayOffer is a flight offer plus its presentation fields.
// The embedded offer keeps its original amount and currency.
type DisplayOffer struct {
	domain.FlightOffer

	DisplayAmount   string              `json:"display_amount"`
	DisplayCurrency string              `json:"display_currency"`
	Stops           int                 `json:"stops"`
	Duration        domain.DurationInfo `json:"duration_info"`
	CabinClass      string              `json:"cabin"`
}

// Facets summarize a result set for building filter controls.
type Facets struct {
	Airlines     []string `json:"airlines"`
	CabinClasses []string `json:"cabinClasses"`
	StopBuckets  []string `json:"stops"`

	// MaxPrice is the highest parseable amount, zero when none parses
	MaxPrice float64 `json:"maxPrice"`
}

// PipelineResult is the output of RunPipeline.
type PipelineResult struct {
	Offers []DisplayOffer `json:"offers"`
	Facets Facets         `json:"facets"`
	Total  int            `json:"total"`
}

// RunPipeline filters, sorts and converts offers for display.
// Facets describe the unfiltered set so narrowing a filter does not hide its own options.
func RunPipeline(offers []domain.FlightOffer, opts SearchOptions) PipelineResult {
	filtered := ApplyFilters(offers, opts.Filters)
	sorted := SortOffers(filtered, opts.SortBy)

	display := make([]DisplayOffer, len(sorted))
	for i, o := range sorted {
		display[i] = NewDisplayOffer(o, opts.DisplayCurrency)
	}

	return PipelineResult{
		Offers: display,
		Facets: BuildFacets(offers),
		Total:  len(display),
	}
}

// NewDisplayOffer wraps an offer with its price in currency. An empty currency keeps
// the offer currency.
func NewDisplayOffer(o domain.FlightOffer, currency string) DisplayOffer {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = o.TotalCurrency
	}

	var duration string
	if len(o.Slices) > 0 {
		duration = o.Slices[0].Duration
	}

	return DisplayOffer{
		FlightOffer:     o,
		DisplayAmount:   domain.ConvertPrice(o.TotalAmount, o.TotalCurrency, currency),
		DisplayCurrency: currency,
		Stops:           Stops(o),
		Duration:        domain.NewDurationInfo(domain.DurationMinutes(duration)),
		CabinClass:      CabinClass(o),
	}
}

// BuildFacets collects the distinct airlines, cabins and stop buckets of offers.
func BuildFacets(offers []domain.FlightOffer) Facets {
	airlines := map[string]struct{}{}
	cabins := map[string]struct{}{}
	buckets := map[string]struct{}{}

	for _, o := range offers {
		if o.Owner.Name != "" {
			airlines[o.Owner.Name] = struct{}{}
		}
		cabins[CabinClass(o)] = struct{}{}
		buckets[StopBucket(o)] = struct{}{}
	}

	facets := Facets{
		Airlines:     sortedKeys(airlines),
		CabinClasses: sortedKeys(cabins),
		StopBuckets:  sortedKeys(buckets),
	}
	if max := MaxPrice(offers); !math.IsInf(max, 1) {
		facets.MaxPrice = max
	}
	return facets
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
