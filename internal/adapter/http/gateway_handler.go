package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/neon-travel/booking-gateway/internal/adapter/http/response"
	"github.com/neon-travel/booking-gateway/internal/domain"
	"github.com/neon-travel/booking-gateway/internal/usecase"
)

// GatewayHandler serves the gateway surface: the stateless proxy in front of the
// upstream aggregator that browser clients and the remote gateway client call.
type GatewayHandler struct {
	gateway usecase.GatewayPort
}

// NewGatewayHandler creates a GatewayHandler over the in-process gateway.
func NewGatewayHandler(gw usecase.GatewayPort) *GatewayHandler {
	return &GatewayHandler{gateway: gw}
}

// PlaceSuggestions handles GET /gateway/places/suggestions
//
// Every failure, and an empty query, degrades to an empty list.
//
// @Summary Place suggestions
// @Tags gateway
// @Produce json
// @Param query query string false "Free text query"
// @Success 200 {object} SwaggerGatewayPlaces
// @Router /gateway/places/suggestions [get]
func (h *GatewayHandler) PlaceSuggestions(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return response.GatewayOK(c, []GatewayPlaceDTO{})
	}

	places, err := h.gateway.SearchPlaces(c.Request().Context(), query)
	if err != nil {
		return response.GatewayOK(c, []GatewayPlaceDTO{})
	}
	return response.GatewayOK(c, ToGatewayPlaces(places))
}

// SearchFlights handles POST /gateway/search
//
// @Summary Flight offer request
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body domain.FlightSearchRequest true "Search criteria"
// @Success 200 {object} SwaggerGatewayOffers
// @Failure 400 {object} response.GatewayError "Upstream rejected the request"
// @Failure 500 {object} response.GatewayError "No Duffel API Key set"
// @Failure 502 {object} response.GatewayError "Upstream failure"
// @Router /gateway/search [post]
func (h *GatewayHandler) SearchFlights(c echo.Context) error {
	var req domain.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.GatewayFailure(c, http.StatusBadRequest, response.GatewayError{Error: response.GatewayErrInvalidBody})
	}

	offers, err := h.gateway.SearchFlights(c.Request().Context(), req)
	if err != nil {
		return h.flightError(c, err)
	}
	if offers == nil {
		offers = []domain.FlightOffer{}
	}
	return response.GatewayOK(c, GatewayOffersDTO{Offers: offers})
}

// flightError maps the gateway error taxonomy to surface statuses.
func (h *GatewayHandler) flightError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUpstreamNotConfigured) {
		return response.GatewayFailure(c, http.StatusInternalServerError, response.GatewayError{Error: domain.MsgNotConfigured})
	}

	ge, ok := domain.AsGatewayError(err)
	if !ok {
		return response.GatewayFailure(c, http.StatusInternalServerError, response.GatewayError{Error: response.GatewayErrInternalError})
	}

	body := response.GatewayError{Details: ge.Details, StatusCode: ge.StatusCode}
	if ge.Kind == domain.KindValidation {
		body.Error = response.GatewayErrValidation
		return response.GatewayFailure(c, http.StatusBadRequest, body)
	}
	body.Error = response.GatewayErrUpstream
	return response.GatewayFailure(c, http.StatusBadGateway, body)
}

// SearchStays handles POST /gateway/stays/search
//
// @Summary Stays search
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body domain.StaysSearchPayload true "Geographic search payload"
// @Success 200 {object} SwaggerGatewayResults
// @Failure 500 {object} response.GatewayError "Stays API Error"
// @Router /gateway/stays/search [post]
func (h *GatewayHandler) SearchStays(c echo.Context) error {
	var payload domain.StaysSearchPayload
	if err := c.Bind(&payload); err != nil {
		return response.GatewayFailure(c, http.StatusBadRequest, response.GatewayError{Error: response.GatewayErrInvalidBody})
	}

	results, err := h.gateway.SearchStays(c.Request().Context(), payload)
	if err != nil {
		body := response.GatewayError{Error: response.GatewayErrStays}
		if ge, ok := domain.AsGatewayError(err); ok {
			body.Details = ge.Details
			body.StatusCode = ge.StatusCode
		}
		return response.GatewayFailure(c, http.StatusInternalServerError, body)
	}
	if results == nil {
		results = []domain.StayResult{}
	}
	return response.GatewayOK(c, GatewayResultsDTO{Results: results})
}

// CreateOrder handles POST /gateway/order
//
// Without a credential, or on upstream failure, a confirmed order is synthesized.
//
// @Summary Create order
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body domain.OrderRequest true "Traveler details"
// @Success 200 {object} SwaggerGatewayOrder
// @Router /gateway/order [post]
func (h *GatewayHandler) CreateOrder(c echo.Context) error {
	var req domain.OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.GatewayFailure(c, http.StatusBadRequest, response.GatewayError{Error: response.GatewayErrInvalidBody})
	}

	order, err := h.gateway.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return response.GatewayFailure(c, http.StatusInternalServerError, response.GatewayError{Error: response.GatewayErrInternalError})
	}
	return response.GatewayOK(c, order)
}

// NotFound answers every unknown gateway path.
func (h *GatewayHandler) NotFound(c echo.Context) error {
	return response.GatewayNotFound(c)
}
