package http

import (
	"github.com/labstack/echo/v4"

	"github.com/neon-travel/booking-gateway/internal/adapter/http/middleware"
)

// GatewayPrefix is the mount point of the gateway surface.
const GatewayPrefix = "/gateway"

// RegisterRoutes registers the health check and the versioned booking API.
func RegisterRoutes(e *echo.Echo, h *BookingHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware.APICORS())

	api.POST("/flights/search", h.SearchFlights)
	api.POST("/stays/search", h.SearchStays)
	api.POST("/cars/search", h.SearchCars)
	api.POST("/security/search", h.SearchSecurity)

	api.GET("/experiences", h.ListExperiences)
	api.GET("/experiences/:id", h.GetExperience)

	api.GET("/places", h.SearchPlaces)
	api.GET("/deals/trending", h.TrendingDeals)
	api.GET("/currency/convert", h.ConvertCurrency)

	auth := api.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/signup", h.Signup)
	auth.POST("/logout", h.Logout)
	auth.GET("/session", h.Session)

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders)
}

// RegisterGatewayRoutes mounts the gateway surface under GatewayPrefix.
// CORS headers and preflights are handled by middleware.GatewayCORS before routing.
func RegisterGatewayRoutes(e *echo.Echo, h *GatewayHandler) {
	g := e.Group(GatewayPrefix)

	g.GET("/places/suggestions", h.PlaceSuggestions)
	g.POST("/search", h.SearchFlights)
	g.POST("/stays/search", h.SearchStays)
	g.POST("/order", h.CreateOrder)

	g.RouteNotFound("/*", h.NotFound)
	g.RouteNotFound("", h.NotFound)
}
