// Package catalog holds the static reference and demo content served by the gateway:
// the airport table, mock offers per service type, curated experiences, trending hubs
// and the demo geocoding table. Every accessor returns a fresh copy.
package catalog

import (
	"strings"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// MaxPlaceMatches caps local place search results.
const MaxPlaceMatches = 10

var airports = []domain.Place{
	// Europe
	{Code: "LHR", City: "London", Name: "Heathrow Airport", Country: "United Kingdom"},
	{Code: "LGW", City: "London", Name: "Gatwick Airport", Country: "United Kingdom"},
	{Code: "CDG", City: "Paris", Name: "Charles de Gaulle Airport", Country: "France"},
	{Code: "ORY", City: "Paris", Name: "Orly Airport", Country: "France"},
	{Code: "AMS", City: "Amsterdam", Name: "Schiphol Airport", Country: "Netherlands"},
	{Code: "FRA", City: "Frankfurt", Name: "Frankfurt Airport", Country: "Germany"},
	{Code: "MUC", City: "Munich", Name: "Munich Airport", Country: "Germany"},
	{Code: "MAD", City: "Madrid", Name: "Adolfo Suárez Madrid–Barajas", Country: "Spain"},
	{Code: "BCN", City: "Barcelona", Name: "Barcelona-El Prat", Country: "Spain"},
	{Code: "FCO", City: "Rome", Name: "Fiumicino Airport", Country: "Italy"},
	{Code: "ZRH", City: "Zurich", Name: "Zurich Airport", Country: "Switzerland"},
	{Code: "IST", City: "Istanbul", Name: "Istanbul Airport", Country: "Turkey"},
	{Code: "DUB", City: "Dublin", Name: "Dublin Airport", Country: "Ireland"},
	{Code: "CPH", City: "Copenhagen", Name: "Copenhagen Airport", Country: "Denmark"},
	{Code: "OSL", City: "Oslo", Name: "Oslo Airport", Country: "Norway"},
	{Code: "ARN", City: "Stockholm", Name: "Arlanda Airport", Country: "Sweden"},
	{Code: "VIE", City: "Vienna", Name: "Vienna International", Country: "Austria"},
	{Code: "LIS", City: "Lisbon", Name: "Lisbon Airport", Country: "Portugal"},
	{Code: "ATH", City: "Athens", Name: "Eleftherios Venizelos", Country: "Greece"},

	// North America
	{Code: "JFK", City: "New York", Name: "John F. Kennedy", Country: "United States"},
	{Code: "EWR", City: "Newark", Name: "Newark Liberty", Country: "United States"},
	{Code: "LGA", City: "New York", Name: "LaGuardia", Country: "United States"},
	{Code: "LAX", City: "Los Angeles", Name: "Los Angeles International", Country: "United States"},
	{Code: "SFO", City: "San Francisco", Name: "San Francisco International", Country: "United States"},
	{Code: "ORD", City: "Chicago", Name: "O'Hare International", Country: "United States"},
	{Code: "ATL", City: "Atlanta", Name: "Hartsfield–Jackson", Country: "United States"},
	{Code: "DFW", City: "Dallas", Name: "Dallas/Fort Worth", Country: "United States"},
	{Code: "MIA", City: "Miami", Name: "Miami International", Country: "United States"},
	{Code: "MCO", City: "Orlando", Name: "Orlando International", Country: "United States"},
	{Code: "LAS", City: "Las Vegas", Name: "Harry Reid International", Country: "United States"},
	{Code: "DEN", City: "Denver", Name: "Denver International", Country: "United States"},
	{Code: "SEA", City: "Seattle", Name: "Seattle-Tacoma", Country: "United States"},
	{Code: "BOS", City: "Boston", Name: "Logan International", Country: "United States"},
	{Code: "YYZ", City: "Toronto", Name: "Pearson International", Country: "Canada"},
	{Code: "YVR", City: "Vancouver", Name: "Vancouver International", Country: "Canada"},
	{Code: "MEX", City: "Mexico City", Name: "Benito Juárez", Country: "Mexico"},

	// Asia & Pacific
	{Code: "HND", City: "Tokyo", Name: "Haneda Airport", Country: "Japan"},
	{Code: "NRT", City: "Tokyo", Name: "Narita International", Country: "Japan"},
	{Code: "SIN", City: "Singapore", Name: "Changi Airport", Country: "Singapore"},
	{Code: "HKG", City: "Hong Kong", Name: "Hong Kong International", Country: "Hong Kong"},
	{Code: "ICN", City: "Seoul", Name: "Incheon International", Country: "South Korea"},
	{Code: "BKK", City: "Bangkok", Name: "Suvarnabhumi Airport", Country: "Thailand"},
	{Code: "PEK", City: "Beijing", Name: "Capital International", Country: "China"},
	{Code: "PVG", City: "Shanghai", Name: "Pudong International", Country: "China"},
	{Code: "DEL", City: "New Delhi", Name: "Indira Gandhi", Country: "India"},
	{Code: "BOM", City: "Mumbai", Name: "Chhatrapati Shivaji", Country: "India"},
	{Code: "SYD", City: "Sydney", Name: "Kingsford Smith", Country: "Australia"},
	{Code: "MEL", City: "Melbourne", Name: "Melbourne Airport", Country: "Australia"},

	// Middle East & Africa
	{Code: "DXB", City: "Dubai", Name: "Dubai International", Country: "UAE"},
	{Code: "DOH", City: "Doha", Name: "Hamad International", Country: "Qatar"},
	{Code: "AUH", City: "Abu Dhabi", Name: "Zayed International", Country: "UAE"},
	{Code: "JNB", City: "Johannesburg", Name: "O.R. Tambo", Country: "South Africa"},
	{Code: "CPT", City: "Cape Town", Name: "Cape Town International", Country: "South Africa"},
	{Code: "CAI", City: "Cairo", Name: "Cairo International", Country: "Egypt"},

	// South America
	{Code: "GRU", City: "São Paulo", Name: "Guarulhos", Country: "Brazil"},
	{Code: "EZE", City: "Buenos Aires", Name: "Ezeiza International", Country: "Argentina"},
	{Code: "BOG", City: "Bogotá", Name: "El Dorado", Country: "Colombia"},
}

var airportsByCode = func() map[string]domain.Place {
	m := make(map[string]domain.Place, len(airports))
	for _, a := range airports {
		m[a.Code] = a
	}
	return m
}()

// Airports returns the full airport table.
func Airports() []domain.Place {
	return append([]domain.Place(nil), airports...)
}

// LookupAirport finds an airport by IATA code.
func LookupAirport(code string) (domain.Place, bool) {
	p, ok := airportsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// SearchAirports does a case-insensitive substring match over code, city, name and country,
// in table order, returning at most limit entries.
func SearchAirports(query string, limit int) []domain.Place {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Place, 0, limit)
	if q == "" || limit <= 0 {
		return out
	}

	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.City), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Country), q) {
			out = append(out, a)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
