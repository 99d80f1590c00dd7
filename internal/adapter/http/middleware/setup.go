package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/neon-travel/booking-gateway/internal/infrastructure/logger"
	"github.com/neon-travel/booking-gateway/internal/infrastructure/metrics"
)

// Setup registers all middleware on the Echo instance. Order matters:
//  1. GatewayCORS (pre-routing) answers gateway preflights before the router runs
//  2. RequestID, so every later log line carries it
//  3. Metrics and RequestLogger observe the final status
//  4. Recover innermost, so a panic becomes a 500 the outer middleware can see
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, rec *metrics.Recorder, gatewayPrefix string) {
	e.Pre(GatewayCORS(gatewayPrefix))
	e.Use(Chain(log, rec)...)
}

// Chain returns the routed middleware as a slice for use with route groups.
func Chain(log *logger.Logger, rec *metrics.Recorder) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		Metrics(rec),
		RequestLogger(log),
		Recover(log),
	}
}
