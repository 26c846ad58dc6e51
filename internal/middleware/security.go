package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds the standard browser hardening headers. Listing
// writes carry seller data and must never be cached; reads only need
// revalidation.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
				h.Set("Cache-Control", "no-cache")
			} else {
				h.Set("Cache-Control", "no-store")
			}

			return next(c)
		}
	}
}
