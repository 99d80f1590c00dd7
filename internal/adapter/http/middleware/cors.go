package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// GatewayAllowHeaders lists the headers a browser client may send to the gateway surface.
const GatewayAllowHeaders = "authorization, x-client-info, apikey, content-type"

// GatewayCORS is a pre-routing middleware for paths under prefix. Every response
// carries the permissive CORS headers and any OPTIONS preflight is answered with "ok".
// It runs before routing so unknown paths and methods get the headers too.
func GatewayCORS(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, prefix) {
				return next(c)
			}

			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, GatewayAllowHeaders)

			if req.Method == http.MethodOptions {
				return c.String(http.StatusOK, "ok")
			}
			return next(c)
		}
	}
}

// APICORS returns the CORS middleware of the booking API.
func APICORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			RequestIDHeader,
			SessionIDHeader,
		},
		ExposeHeaders: []string{RequestIDHeader, SessionIDHeader},
	})
}
