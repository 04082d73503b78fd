package middleware // middleware contains reusable HTTP middleware for the ticket API

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth returns an Echo middleware that requires the X-API-Key
// request header to match the configured key. The key comes from the
// API_KEY environment variable the deployment injects; when it is empty
// the middleware is a no-op so local development stays friction-free.
// Comparison is constant-time to avoid leaking the key through timing.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" {
				return next(c)
			}
			got := c.Request().Header.Get("X-API-Key")
			if got == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing api key"})
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid api key"})
			}
			return next(c)
		}
	}
}
