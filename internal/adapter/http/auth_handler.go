package http

import (
	"github.com/labstack/echo/v4"

	"github.com/neon-travel/booking-gateway/internal/adapter/http/middleware"
	"github.com/neon-travel/booking-gateway/internal/adapter/http/response"
	"github.com/neon-travel/booking-gateway/internal/domain"
)

// Login handles POST /api/v1/auth/login
//
// @Summary Mock sign-in
// @Description No password is checked. The session id is returned in X-Session-ID.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Existing session id"
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/auth/login [post]
func (h *BookingHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	id, user, err := h.sessions.Login(middleware.GetSessionID(c), req.Email)
	if err != nil {
		return h.handleError(c, err)
	}
	return h.signedIn(c, id, user)
}

// Signup handles POST /api/v1/auth/signup
//
// @Summary Mock sign-up
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Existing session id"
// @Param request body SignupRequest true "Profile"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/auth/signup [post]
func (h *BookingHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	id, user, err := h.sessions.Signup(middleware.GetSessionID(c), req.Email, req.FirstName, req.LastName)
	if err != nil {
		return h.handleError(c, err)
	}
	return h.signedIn(c, id, user)
}

// Logout handles POST /api/v1/auth/logout
//
// @Summary Sign out
// @Description Clears the session user. The booking history is kept.
// @Tags auth
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} SessionResponse
// @Router /api/v1/auth/logout [post]
func (h *BookingHandler) Logout(c echo.Context) error {
	id := middleware.GetSessionID(c)
	if err := h.sessions.Logout(id); err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, SessionResponse{SessionID: id})
}

// Session handles GET /api/v1/auth/session
//
// @Summary Current session
// @Tags auth
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} SessionResponse
// @Router /api/v1/auth/session [get]
func (h *BookingHandler) Session(c echo.Context) error {
	id := middleware.GetSessionID(c)
	user, ok := h.sessions.User(id)
	if !ok {
		return response.OK(c, SessionResponse{SessionID: id})
	}
	return response.OK(c, SessionResponse{SessionID: id, Authenticated: true, User: &user})
}

// CreateOrder handles POST /api/v1/orders
//
// @Summary Book an offer
// @Description Requires a signed-in session. Booking never fails on upstream errors.
// @Tags orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body SwaggerBookingRequest true "Booking submission"
// @Success 201 {object} domain.Order
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Not signed in"
// @Router /api/v1/orders [post]
func (h *BookingHandler) CreateOrder(c echo.Context) error {
	var req domain.BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if st, ok := domain.ParseServiceType(string(req.ServiceType)); ok {
		req.ServiceType = st
	}

	order, err := h.bookings.Book(c.Request().Context(), middleware.GetSessionID(c), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, order)
}

// ListOrders handles GET /api/v1/orders
//
// @Summary Booking history
// @Tags orders
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param type query string false "Service type filter" Enums(FLIGHTS, STAYS, CARS, SECURITY, EXPERIENCE)
// @Success 200 {object} OrdersResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Not signed in"
// @Router /api/v1/orders [get]
func (h *BookingHandler) ListOrders(c echo.Context) error {
	id := middleware.GetSessionID(c)
	if _, ok := h.sessions.User(id); !ok {
		return response.Unauthorized(c)
	}

	serviceType, _ := domain.ParseServiceType(c.QueryParam("type"))
	orders, err := h.bookings.Orders(id, serviceType)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, OrdersResponse{Orders: orders, Total: len(orders)})
}

func (h *BookingHandler) signedIn(c echo.Context, id string, user domain.User) error {
	c.Response().Header().Set(middleware.SessionIDHeader, id)
	return response.OK(c, SessionResponse{SessionID: id, Authenticated: true, User: &user})
}
