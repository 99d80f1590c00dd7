package catalog

import (
	"strings"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// Stay mapping defaults for sparse upstream results.
const (
	DefaultStayPrice    = "150"
	DefaultStayCurrency = "USD"
	DefaultStayRating   = 4.5
	DefaultStayLocation = "Unknown"
	DefaultStayImage    = "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3"
	DefaultSearchRadius = 10
)

// DefaultStayAmenities is used when a result lists no amenities.
func DefaultStayAmenities() []string {
	return []string{"Wifi", "AC"}
}

var mockStays = []domain.StayOffer{
	{
		ID:            "stay_mock_1",
		Name:          "Grand Plaza Hotel (Mock)",
		Location:      "Paris, France",
		PricePerNight: "250",
		Currency:      "USD",
		Rating:        4.8,
		ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Amenities:     []string{"Pool", "Spa", "Free WiFi", "Breakfast"},
	},
	{
		ID:            "stay_mock_2",
		Name:          "City Center Suites (Mock)",
		Location:      "Paris, France",
		PricePerNight: "180",
		Currency:      "USD",
		Rating:        4.5,
		ImageURL:      "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Amenities:     []string{"Kitchen", "Gym", "City View"},
	},
}

// MockStays returns a copy of the demo stay offers.
func MockStays() []domain.StayOffer {
	out := make([]domain.StayOffer, len(mockStays))
	for i, s := range mockStays {
		s.Amenities = append([]string(nil), s.Amenities...)
		out[i] = s
	}
	return out
}

type cityCoordinates struct {
	keywords []string
	coords   domain.Coordinates
}

// London is the fallback for unresolved locations.
var londonCoordinates = domain.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

var demoGeocoding = []cityCoordinates{
	{keywords: []string{"paris"}, coords: domain.Coordinates{Latitude: 48.8566, Longitude: 2.3522}},
	{keywords: []string{"london"}, coords: londonCoordinates},
	{keywords: []string{"new york", "jfk"}, coords: domain.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
	{keywords: []string{"dubai"}, coords: domain.Coordinates{Latitude: 25.2048, Longitude: 55.2708}},
	{keywords: []string{"tokyo"}, coords: domain.Coordinates{Latitude: 35.6762, Longitude: 139.6503}},
}

// Coordinates resolves a free-text location by keyword. Unknown locations resolve to London.
func Coordinates(location string) domain.Coordinates {
	loc := strings.ToLower(location)
	for _, c := range demoGeocoding {
		for _, kw := range c.keywords {
			if strings.Contains(loc, kw) {
				return c.coords
			}
		}
	}
	return londonCoordinates
}
