package domain

// Place is an airport or city used for autocomplete.
type Place struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// DestinationDeal is the cheapest offer found for a candidate destination.
// It is derived on every request and never stored.
type DestinationDeal struct {
	ID                 string `json:"id"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	DestinationCity    string `json:"destinationCity"`
	DestinationCountry string `json:"destinationCountry"`
	Price              string `json:"price"`
	Currency           string `json:"currency"`
	ImageURL           string `json:"imageUrl"`
	DepartureDate      string `json:"departureDate"`
	Airline            string `json:"airline"`
}

// User is a signed-in traveler. No credentials are kept.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
