package catalog

import "github.com/neon-travel/booking-gateway/internal/domain"

var cars = []domain.CarOffer{
	{
		ID:          "car_1",
		Brand:       "Tesla",
		Model:       "Model X",
		Type:        "Electric SUV",
		PricePerDay: "120",
		Currency:    "USD",
		Seats:       7,
		ImageURL:    "https://images.unsplash.com/photo-1617788138017-80ad40651399?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID:          "car_2",
		Brand:       "Range Rover",
		Model:       "Sport",
		Type:        "Luxury SUV",
		PricePerDay: "150",
		Currency:    "USD",
		Seats:       5,
		ImageURL:    "https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
	},
}

// Cars returns the car rental catalog.
func Cars() []domain.CarOffer {
	return append([]domain.CarOffer(nil), cars...)
}

var securityTeams = []domain.SecurityOffer{
	{
		ID:             "sec_1",
		Title:          "Elite Protection Squad",
		Type:           "Event Security Team",
		PersonnelCount: domain.DefaultPersonnel,
		HourlyRate:     "80",
		Currency:       "USD",
		Certification:  "SIA Level 3",
		ImageURL:       "https://images.unsplash.com/photo-1595675024853-0f3ec9098ac7?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID:             "sec_2",
		Title:          "Personal Bodyguard",
		Type:           "VIP Close Protection",
		PersonnelCount: 1,
		HourlyRate:     "150",
		Currency:       "USD",
		Certification:  "Ex-Military",
		ImageURL:       "https://images.unsplash.com/photo-1555449372-525b41052296?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
	},
}

// SecurityTeams returns the security catalog. The team size of the first entry
// follows personnelCount, defaulting to 4 when it is not positive.
func SecurityTeams(personnelCount int) []domain.SecurityOffer {
	out := append([]domain.SecurityOffer(nil), securityTeams...)
	if personnelCount > 0 {
		out[0].PersonnelCount = personnelCount
	}
	return out
}
