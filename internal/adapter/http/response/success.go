package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// Mode is "live" with an upstream credential and "demo" without one
	Mode string `json:"mode"`
}

// Health writes a health check response.
func Health(c echo.Context, mode string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
		Mode:   mode,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
