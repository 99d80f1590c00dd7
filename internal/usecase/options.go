// Package usecase contains the booking gateway business logic: the upstream gateway,
// the search orchestrator with its mock fallback policy, the results pipeline
// and the booking service.
package usecase

import "strings"

// SortOption specifies how flight results are ordered.
type SortOption string

// Sort options. SortNone keeps the upstream order.
const (
	SortNone       SortOption = ""
	SortByPrice    SortOption = "price"
	SortByDuration SortOption = "duration"
)

// IsValid checks if the sort option is supported.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNone, SortByPrice, SortByDuration:
		return true
	default:
		return false
	}
}

// Stop buckets used by the stop filter.
const (
	StopsDirect    = "0"
	StopsOne       = "1"
	StopsTwoOrMore = "2+"
)

// FlightFilters narrows a result set. Every criterion is ANDed; an empty criterion
// places no restriction.
type FlightFilters struct {
	// MaxPrice is a decimal ceiling. Empty or unparseable means the highest price in the set.
	MaxPrice string `json:"maxPrice"`

	// Stops holds stop buckets ("0", "1", "2+")
	Stops []string `json:"stops"`

	CabinClasses []string `json:"cabinClasses"`
	Airlines     []string `json:"airlines"`
}

// IsEmpty reports whether no criterion is set.
func (f FlightFilters) IsEmpty() bool {
	return strings.TrimSpace(f.MaxPrice) == "" && len(f.Stops) == 0 &&
		len(f.CabinClasses) == 0 && len(f.Airlines) == 0
}

// SearchOptions contains the presentation parameters of a flight search.
type SearchOptions struct {
	Filters FlightFilters

	SortBy SortOption

	// DisplayCurrency is the currency prices are shown in. Empty keeps the offer currency.
	DisplayCurrency string
}

// DefaultSearchOptions returns SearchOptions with no filters, upstream order and offer currencies.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}
