package middleware

import (
	"github.com/labstack/echo/v4"
)

const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeaders sets response headers for a JSON-only API. HSTS is only
// sent when strictTransport is true, which the server enables outside
// development so that plain-HTTP local setups keep working.
func SecurityHeaders(strictTransport bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", apiContentSecurityPolicy)
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			if strictTransport {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			// balances and receipts are per-user data
			h.Set("Cache-Control", "no-store, private")
			h.Set("Pragma", "no-cache")

			return next(c)
		}
	}
}
