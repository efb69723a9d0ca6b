package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// Identity resolves the caller from the X-User-ID header set by the edge
// auth layer. Token verification happens upstream; this service trusts the
// resolved id.
func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get("X-User-ID")
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
		}
		c.Set(userIDKey, userID)
		return next(c)
	}
}

// UserID returns the caller id stored by Identity, or "" when the route ran
// without it.
func UserID(c echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}
