package duffel

import "github.com/neon-travel/booking-gateway/internal/domain"

// toPlaces maps suggestions to places, dropping entries without an IATA code.
func toPlaces(suggestions []placeSuggestion) []domain.Place {
	places := make([]domain.Place, 0, len(suggestions))
	for _, s := range suggestions {
		if s.IATACode == "" {
			continue
		}
		city := s.CityName
		if city == "" {
			city = s.Name
		}
		places = append(places, domain.Place{
			Code:    s.IATACode,
			City:    city,
			Name:    s.Name,
			Country: s.CountryName,
		})
	}
	return places
}
