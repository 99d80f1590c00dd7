package middleware

import "github.com/labstack/echo/v4"

// SessionIDHeader carries the mock auth session id.
const SessionIDHeader = "X-Session-ID"

// GetSessionID returns the session id sent by the client, or an empty string.
func GetSessionID(c echo.Context) string {
	return c.Request().Header.Get(SessionIDHeader)
}
