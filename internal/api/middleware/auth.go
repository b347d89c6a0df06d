package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/commerce-api/internal/pkg/token"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// Context keys populated by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth is the guard for protected operations. It reads the session token
// from the request cookie, verifies signature and expiry, and injects the
// resolved identity into the request context. A missing cookie and a failed
// verification are both 401, with distinct messages.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login first")
			}

			claims, err := token.Verify(cookie.Value, jwtSecret)
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "expired token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)

			return next(c)
		}
	}
}
