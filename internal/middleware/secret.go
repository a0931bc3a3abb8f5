package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
)

// ListSecret gates a route on its :secret path parameter. A mismatch is
// answered exactly like a missing route, so callers cannot tell a wrong
// secret from a resource that does not exist. An empty configured secret
// disables the route entirely.
func ListSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Param("secret")

			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				return echo.ErrNotFound
			}

			return next(c)
		}
	}
}
