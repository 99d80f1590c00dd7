package http

import (
	"strconv"

	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

// ToDomainFlightRequest converts a validated SearchFlightsRequest to domain.FlightSearchRequest.
func ToDomainFlightRequest(req *SearchFlightsRequest) domain.FlightSearchRequest {
	return domain.FlightSearchRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
		CabinClass:    req.CabinClass,
	}.Normalize()
}

// ToFlightFilters converts a FilterDTO to usecase.FlightFilters.
func ToFlightFilters(dto *FilterDTO) usecase.FlightFilters {
	if dto == nil {
		return usecase.FlightFilters{}
	}

	filters := usecase.FlightFilters{
		Stops:        dto.Stops,
		CabinClasses: dto.CabinClasses,
		Airlines:     dto.Airlines,
	}
	if dto.MaxPrice != nil {
		filters.MaxPrice = strconv.FormatFloat(*dto.MaxPrice, 'f', -1, 64)
	}
	return filters
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters:         ToFlightFilters(req.Filters),
		SortBy:          usecase.SortOption(req.SortBy),
		DisplayCurrency: req.DisplayCurrency,
	}
}

// ToDomainStayRequest converts a SearchStaysRequest to domain.StaySearchRequest.
func ToDomainStayRequest(req *SearchStaysRequest) domain.StaySearchRequest {
	return domain.StaySearchRequest{
		Location: req.Location,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	}
}

// ToDomainCarRequest converts a SearchCarsRequest to domain.CarSearchRequest.
func ToDomainCarRequest(req *SearchCarsRequest) domain.CarSearchRequest {
	return domain.CarSearchRequest{
		PickupLocation: req.PickupLocation,
		PickupDate:     req.PickupDate,
		CarType:        req.CarType,
		Days:           req.Days,
	}
}

// ToDomainSecurityRequest converts a SearchSecurityRequest to domain.SecuritySearchRequest.
func ToDomainSecurityRequest(req *SearchSecurityRequest) domain.SecuritySearchRequest {
	return domain.SecuritySearchRequest{
		Location:       req.Location,
		Date:           req.Date,
		SecurityType:   req.SecurityType,
		PersonnelCount: req.PersonnelCount,
	}
}

// ToGatewayPlaces converts places to the aggregator-shaped suggestions of the gateway surface.
func ToGatewayPlaces(places []domain.Place) []GatewayPlaceDTO {
	out := make([]GatewayPlaceDTO, len(places))
	for i, p := range places {
		out[i] = GatewayPlaceDTO{
			IATACode:    p.Code,
			Name:        p.Name,
			CityName:    p.City,
			CountryName: p.Country,
		}
	}
	return out
}
