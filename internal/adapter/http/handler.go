package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/neon-travel/booking-gateway/internal/adapter/http/response"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/session"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

// Health modes.
const (
	ModeLive = "live"
	ModeDemo = "demo"
)

// BookingHandler handles the booking API: searches, mock auth and orders.
type BookingHandler struct {
	orchestrator *usecase.Orchestrator
	bookings     *usecase.BookingService
	sessions     *session.Store
	mode         string
}

// NewBookingHandler creates a BookingHandler. mode is reported by the health check.
func NewBookingHandler(o *usecase.Orchestrator, b *usecase.BookingService, s *session.Store, mode string) *BookingHandler {
	if mode == "" {
		mode = ModeDemo
	}
	return &BookingHandler{orchestrator: o, bookings: b, sessions: s, mode: mode}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search flights, then filter, sort and convert prices for display.
// @Description When the upstream is unavailable or returns nothing, demo offers are returned.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SwaggerFlightSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *BookingHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers := h.orchestrator.SearchFlights(c.Request().Context(), ToDomainFlightRequest(&req))
	return response.SearchResults(c, usecase.RunPipeline(offers, ToSearchOptions(&req)))
}

// SearchStays handles POST /api/v1/stays/search
//
// @Summary Search for stays
// @Tags stays
// @Accept json
// @Produce json
// @Param request body SearchStaysRequest true "Search criteria"
// @Success 200 {object} StaysResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/stays/search [post]
func (h *BookingHandler) SearchStays(c echo.Context) error {
	var req SearchStaysRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.orchestrator.SearchStays(c.Request().Context(), ToDomainStayRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, StaysResponse{Offers: offers, Total: len(offers)})
}

// SearchCars handles POST /api/v1/cars/search
//
// @Summary Search for car rentals
// @Tags cars
// @Accept json
// @Produce json
// @Param request body SearchCarsRequest true "Search criteria"
// @Success 200 {object} CarsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/cars/search [post]
func (h *BookingHandler) SearchCars(c echo.Context) error {
	var req SearchCarsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers := h.orchestrator.SearchCars(c.Request().Context(), ToDomainCarRequest(&req))
	return response.SearchResults(c, CarsResponse{Offers: offers, Total: len(offers)})
}

// SearchSecurity handles POST /api/v1/security/search
//
// @Summary Search for security details
// @Tags security
// @Accept json
// @Produce json
// @Param request body SearchSecurityRequest true "Search criteria"
// @Success 200 {object} SecurityResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/security/search [post]
func (h *BookingHandler) SearchSecurity(c echo.Context) error {
	var req SearchSecurityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers := h.orchestrator.SearchSecurity(c.Request().Context(), ToDomainSecurityRequest(&req))
	return response.SearchResults(c, SecurityResponse{Offers: offers, Total: len(offers)})
}

// ListExperiences handles GET /api/v1/experiences
//
// @Summary List curated experiences
// @Tags experiences
// @Produce json
// @Success 200 {object} ExperiencesResponse
// @Router /api/v1/experiences [get]
func (h *BookingHandler) ListExperiences(c echo.Context) error {
	exps := h.orchestrator.ListExperiences(c.Request().Context())
	return response.OK(c, ExperiencesResponse{Experiences: exps, Total: len(exps)})
}

// GetExperience handles GET /api/v1/experiences/:id
//
// @Summary Get a curated experience
// @Tags experiences
// @Produce json
// @Param id path string true "Experience id"
// @Success 200 {object} domain.ExperienceOffer
// @Failure 404 {object} response.ErrorDetail "Unknown experience"
// @Router /api/v1/experiences/{id} [get]
func (h *BookingHandler) GetExperience(c echo.Context) error {
	exp, err := h.orchestrator.GetExperience(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, exp)
}

// SearchPlaces handles GET /api/v1/places
//
// @Summary Location autocomplete
// @Description Queries shorter than two characters return no suggestions.
// @Tags places
// @Produce json
// @Param query query string false "Free text query"
// @Success 200 {object} PlacesResponse
// @Router /api/v1/places [get]
func (h *BookingHandler) SearchPlaces(c echo.Context) error {
	places := h.orchestrator.SearchPlaces(c.Request().Context(), c.QueryParam("query"))
	return response.OK(c, PlacesResponse{Places: places})
}

// TrendingDeals handles GET /api/v1/deals/trending
//
// @Summary Trending destination deals
// @Tags deals
// @Produce json
// @Param origin query string false "Origin IATA code" default(JFK)
// @Success 200 {object} DealsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/deals/trending [get]
func (h *BookingHandler) TrendingDeals(c echo.Context) error {
	origin := strings.ToUpper(strings.TrimSpace(c.QueryParam("origin")))
	if origin == "" {
		origin = usecase.DefaultDealOrigin
	}
	if !domain.IsValidAirportCode(origin) {
		return response.ValidationError(c, map[string]string{"origin": "origin must be a valid 3-letter IATA airport code"})
	}

	deals := h.orchestrator.TrendingDeals(c.Request().Context(), origin)
	return response.OK(c, DealsResponse{Origin: origin, Deals: deals})
}

// ConvertCurrency handles GET /api/v1/currency/convert
//
// @Summary Convert a price for display
// @Tags currency
// @Produce json
// @Param amount query string true "Decimal amount"
// @Param from query string false "Source currency" default(USD)
// @Param to query string true "Target currency"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/currency/convert [get]
func (h *BookingHandler) ConvertCurrency(c echo.Context) error {
	amount := strings.TrimSpace(c.QueryParam("amount"))
	from := strings.ToUpper(strings.TrimSpace(c.QueryParam("from")))
	to := strings.ToUpper(strings.TrimSpace(c.QueryParam("to")))
	if from == "" {
		from = domain.BaseCurrency
	}

	errs := &ValidationErrors{}
	if amount == "" {
		errs.Add("amount", "amount is required")
	}
	supported := strings.Join(domain.SupportedCurrencies(), ", ")
	if !domain.IsKnownCurrency(from) {
		errs.Add("from", "from must be one of: "+supported)
	}
	if !domain.IsKnownCurrency(to) {
		errs.Add("to", "to must be one of: "+supported)
	}
	if errs.HasErrors() {
		return response.ValidationError(c, errs.ToMap())
	}

	return response.OK(c, ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: domain.ConvertPrice(amount, from, to),
	})
}

// Health handles GET /health
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c, h.mode)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BookingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Anything unexpected is a generic 500.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c)
	}

	logger.FromContext(c.Request().Context(), nil).Error().
		Err(err).
		Str("route", c.Path()).
		Msg("Unhandled error")
	return response.InternalServerError(c)
}
