package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
)

const bearerPrefix = "Bearer "

// RequireAPIKey gates a route group behind the shared admin secret. The key
// is read from the X-API-Key header first, then from a Bearer authorization
// header. The comparison is constant-time so response latency leaks nothing
// about how much of the secret matched.
func RequireAPIKey(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := presentedKey(c.Request().Header)
			if key == "" {
				return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
					Error:   "Unauthorized",
					Message: "Missing API key",
				})
			}
			if subtle.ConstantTimeCompare([]byte(key), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
					Error:   "Unauthorized",
					Message: "Invalid API key",
				})
			}
			return next(c)
		}
	}
}

// presentedKey extracts the caller's credential. X-API-Key wins over the
// authorization header; a non-Bearer authorization header is ignored.
func presentedKey(h http.Header) string {
	if key := h.Get("X-API-Key"); key != "" {
		return key
	}
	if authz := h.Get(echo.HeaderAuthorization); strings.HasPrefix(authz, bearerPrefix) {
		return strings.TrimPrefix(authz, bearerPrefix)
	}
	return ""
}
