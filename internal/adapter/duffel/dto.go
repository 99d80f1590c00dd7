package duffel

import "github.com/neon-travel/booking-gateway/internal/domain"

// Wire shapes of the aggregator API. Every body is wrapped in a "data" envelope.

type offerRequestBody struct {
	Data offerRequestData `json:"data"`
}

type offerRequestData struct {
	Slices     []sliceRequest     `json:"slices"`
	Passengers []passengerRequest `json:"passengers"`
	CabinClass string             `json:"cabin_class"`
}

type sliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type passengerRequest struct {
	Type string `json:"type"`
}

type offerRequestResponse struct {
	Data struct {
		Offers []domain.FlightOffer `json:"offers"`
	} `json:"data"`
}

type placesResponse struct {
	Data []placeSuggestion `json:"data"`
}

type placeSuggestion struct {
	Type        string `json:"type"`
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
}

type staysRequestBody struct {
	Data domain.StaysSearchPayload `json:"data"`
}

type staysResponse struct {
	Data struct {
		Results []domain.StayResult `json:"results"`
	} `json:"data"`
}

type orderRequestBody struct {
	Data orderRequestData `json:"data"`
}

type orderRequestData struct {
	Type           string           `json:"type"`
	SelectedOffers []string         `json:"selected_offers"`
	Passengers     []orderPassenger `json:"passengers"`
	Payments       []orderPayment   `json:"payments"`
}

type orderPassenger struct {
	ID          string `json:"id"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BornOn      string `json:"born_on"`
	Title       string `json:"title"`
	Gender      string `json:"gender"`
}

type orderPayment struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type orderResponse struct {
	Data domain.Order `json:"data"`
}
