package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Gateway surface error strings.
const (
	GatewayErrValidation    = "Duffel API Error"
	GatewayErrUpstream      = "Upstream API Error"
	GatewayErrStays         = "Stays API Error"
	GatewayErrNotFound      = "Endpoint Not Found"
	GatewayErrInvalidBody   = "Invalid request body"
	GatewayErrInternalError = "Internal Server Error"
)

// GatewayError is the error body of the gateway surface.
type GatewayError struct {
	Error string `json:"error"`

	// Details is the upstream error payload, passed through unmodified
	Details json.RawMessage `json:"details,omitempty" swaggertype:"object"`

	// StatusCode is the upstream HTTP status
	StatusCode int `json:"statusCode,omitempty"`
}

// GatewayData is the success envelope of the gateway surface.
type GatewayData struct {
	Data interface{} `json:"data"`
}

// GatewayOK writes {"data": data} with status 200.
func GatewayOK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &GatewayData{Data: data})
}

// GatewayFailure writes a gateway error body.
func GatewayFailure(c echo.Context, status int, body GatewayError) error {
	return c.JSON(status, &body)
}

// GatewayNotFound writes the 404 body for unknown gateway paths.
func GatewayNotFound(c echo.Context) error {
	return GatewayFailure(c, http.StatusNotFound, GatewayError{Error: GatewayErrNotFound})
}
