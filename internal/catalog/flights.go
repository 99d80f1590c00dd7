package catalog

import "github.com/neon-travel/booking-gateway/internal/domain"

func mockFlight(id, amount, owner, passengerID, duration, departing, arriving string) domain.FlightOffer {
	return domain.FlightOffer{
		ID:            id,
		TotalAmount:   amount,
		TotalCurrency: "USD",
		Owner:         domain.Carrier{Name: owner},
		Passengers:    []domain.OfferPassenger{{ID: passengerID, Type: domain.PassengerTypeAdult}},
		Slices: []domain.Slice{{
			Duration: duration,
			Segments: []domain.Segment{{
				Origin:           domain.AirportRef{IATACode: "JFK", Name: "New York"},
				Destination:      domain.AirportRef{IATACode: "LHR", Name: "London"},
				DepartingAt:      departing,
				ArrivingAt:       arriving,
				MarketingCarrier: domain.Carrier{Name: owner},
			}},
		}},
	}
}

var mockFlights = []domain.FlightOffer{
	mockFlight("off_mock_1", "450.00", "NeonAir", "pas_mock_1", "PT7H30M", "2026-06-15T18:00:00", "2026-06-16T06:30:00"),
	mockFlight("off_mock_2", "320.50", "CyberWings", "pas_mock_2", "PT8H15M", "2026-06-15T20:00:00", "2026-06-16T09:15:00"),
	mockFlight("off_mock_3", "850.00", "OrbitOne", "pas_mock_3", "PT6H45M", "2026-06-15T09:00:00", "2026-06-15T20:45:00"),
}

// MockFlights returns a deep copy of the demo flight offers (JFK to LHR).
func MockFlights() []domain.FlightOffer {
	out := make([]domain.FlightOffer, len(mockFlights))
	for i, f := range mockFlights {
		out[i] = f.Clone()
	}
	return out
}
