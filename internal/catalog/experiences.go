package catalog

import "github.com/neon-travel/booking-gateway/internal/domain"

var experiences = []domain.ExperienceOffer{
	{
		ID:           "exp_detty_december",
		Title:        "Detty December with Chief Ugo Mozie",
		Location:     "Lagos, Nigeria",
		ImageURL:     "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "8,000",
		Currency:     "USD",
		Date:         "2025-12-15",
		DurationDays: 7,
		Tag:          "Culture",
		Description:  "Dive into the vibrant heart of Lagos during its most electric season. Curated by Chief Ugo Mozie, this experience offers unparalleled access to the Afrobeat scene, high fashion, and luxury beach culture.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Akwaaba to Lagos", Description: "VIP Airport arrival service. Check-in at The Wheatbaker. Welcome dinner at Nok by Alara."},
			{Day: 2, Title: "Art & Culture", Description: "Private tour of Nike Art Gallery and Lekki Conservation Centre."},
			{Day: 3, Title: "Ilashe Beach Escape", Description: "Private yacht cruise to a luxury beach house in Ilashe. Jet skis and grilled feast."},
			{Day: 4, Title: "The Concert", Description: "All-access VVIP table at the headline Afrobeat concert of the season."},
			{Day: 5, Title: "Fashion & Style", Description: "Personal styling session and shopping tour with Chief Ugo Mozie."},
			{Day: 6, Title: "Lagos Nightlife", Description: "Guided tour of Victoria Island's most exclusive clubs."},
			{Day: 7, Title: "Departure", Description: "Relaxed brunch and airport transfer."},
		},
		Included: []string{"5-Star Accommodation", "VVIP Concert Access", "Private Yacht", "Security Detail", "Stylist Session"},
	},
	{
		ID:           "exp_met_2026",
		Title:        "Met Gala 2026",
		Location:     "New York, USA",
		ImageURL:     "https://images.unsplash.com/photo-1545167622-3a6ac15604e9?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "15,000",
		Currency:     "USD",
		Date:         "2026-05-04",
		DurationDays: 3,
		Tag:          "Exclusive",
		Description:  "Secure your place at the most exclusive fashion event of the year. This package includes VIP red carpet access, a 5-star stay at The Pierre, and a private stylist consultation.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Arrival & Fittings", Description: "Private car transfer to The Pierre. Afternoon fitting with celebrity stylist and final alterations."},
			{Day: 2, Title: "The Main Event", Description: "Red carpet arrival at the Metropolitan Museum of Art. Dinner and gala access. Official after-party entry."},
			{Day: 3, Title: "Decompression Spa", Description: "Morning brunch followed by a full-service spa treatment before departure."},
		},
		Included: []string{"Gala Ticket", "2 Nights at The Pierre", "Stylist", "Private Transport", "Security Detail"},
	},
	{
		ID:           "exp_f1_monaco",
		Title:        "F1 Monaco Grand Prix",
		Location:     "Monte Carlo, Monaco",
		ImageURL:     "https://images.unsplash.com/photo-1533591380348-14193f1de18f?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "4,500",
		Currency:     "USD",
		Date:         "2026-05-22",
		DurationDays: 4,
		Tag:          "Sports",
		Description:  "Experience the crown jewel of Formula 1 from a private yacht in the harbor. Includes pit lane walks and meet-and-greets with drivers.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Welcome to Monaco", Description: "Helicopter transfer from Nice. Welcome drinks on the Roadman Superyacht."},
			{Day: 2, Title: "Qualifying", Description: "Watch the intense qualifying session from the trackside terrace. Evening casino access."},
			{Day: 3, Title: "Race Day", Description: "Premium hospitality viewing of the Grand Prix. Champagne reception."},
			{Day: 4, Title: "Departure", Description: "Private transfer to airport."},
		},
		Included: []string{"Yacht Access", "Paddock Club Pass", "4-Star Hotel", "Helicopter Transfer"},
	},
	{
		ID:           "exp_santorini",
		Title:        "Santorini Sunset Yacht",
		Location:     "Santorini, Greece",
		ImageURL:     "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "1,200",
		Currency:     "USD",
		Date:         "2026-06-10",
		DurationDays: 5,
		Tag:          "Luxury",
		Description:  "A romantic and relaxing escape to the Aegean Sea. Private sunset cruises, wine tasting, and cliffside dining.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Arrival in Oia", Description: "Check-in to your cave suite. Sunset dinner overlooking the caldera."},
			{Day: 2, Title: "Catamaran Cruise", Description: "Full day private sailing with snorkeling and BBQ on board."},
			{Day: 3, Title: "Winery Tour", Description: "Visit 3 ancient vineyards with a sommelier."},
			{Day: 4, Title: "Free Day", Description: "Explore Fira or relax by the infinity pool."},
			{Day: 5, Title: "Departure", Description: "Transfer to airport."},
		},
		Included: []string{"Cave Suite Stay", "Private Yacht Charter", "Wine Tasting", "Breakfast Daily"},
	},
	{
		ID:           "exp_lapland",
		Title:        "Northern Lights Igloo",
		Location:     "Lapland, Finland",
		ImageURL:     "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "3,000",
		Currency:     "USD",
		Date:         "2026-11-15",
		DurationDays: 4,
		Tag:          "Adventure",
		Description:  "Sleep under the stars in a heated glass igloo. Husky sledding, reindeer safari, and aurora hunting.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Arctic Arrival", Description: "Transfer to Kakslauttanen. Check into Glass Igloo."},
			{Day: 2, Title: "Husky Safari", Description: "Drive your own team of huskies across the snowy wilderness."},
			{Day: 3, Title: "Aurora Hunting", Description: "Snowmobile adventure to chase the Northern Lights."},
			{Day: 4, Title: "Farewell", Description: "Visit Santa Claus Village before departure."},
		},
		Included: []string{"Glass Igloo Stay", "All Excursions", "Thermal Gear Rental", "Half Board Meals"},
	},
	{
		ID:           "exp_cyber_tokyo",
		Title:        "Neon Tokyo Drift",
		Location:     "Tokyo, Japan",
		ImageURL:     "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		PriceAmount:  "5,200",
		Currency:     "USD",
		Date:         "2026-05-15",
		DurationDays: 6,
		Tag:          "Urban",
		Description:  "Deep dive into Tokyo's car culture and cyberpunk aesthetic. Daikoku Futo meetups, Akihabara gaming, and robot restaurants.",
		Itinerary: []domain.ItineraryItem{
			{Day: 1, Title: "Shinjuku Nights", Description: "Arrival and street food tour in Omoide Yokocho."},
			{Day: 2, Title: "Drift Culture", Description: "Private JDM car tour to Daikoku Futo PA."},
			{Day: 3, Title: "Tech & Gaming", Description: "VIP access to TGS exhibits and Akihabara retro shopping."},
			{Day: 4, Title: "Modern Tradition", Description: "TeamLabs Planets private viewing and Meiji Shrine."},
			{Day: 5, Title: "Cyber Dinner", Description: "Robot Restaurant show and high-end sushi."},
			{Day: 6, Title: "Sayonara", Description: "Bullet train experience to airport."},
		},
		Included: []string{"5-Star Hotel", "Private Driver", "Translator", "All Entry Fees"},
	},
}

func cloneExperience(e domain.ExperienceOffer) domain.ExperienceOffer {
	e.Itinerary = append([]domain.ItineraryItem(nil), e.Itinerary...)
	e.Included = append([]string(nil), e.Included...)
	return e
}

// Experiences returns the curated experience catalog.
func Experiences() []domain.ExperienceOffer {
	out := make([]domain.ExperienceOffer, len(experiences))
	for i, e := range experiences {
		out[i] = cloneExperience(e)
	}
	return out
}

// Experience finds an experience by id.
func Experience(id string) (domain.ExperienceOffer, bool) {
	for _, e := range experiences {
		if e.ID == id {
			return cloneExperience(e), true
		}
	}
	return domain.ExperienceOffer{}, false
}
