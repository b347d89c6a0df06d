package handler

import (
	"net/http"
	"time"

	"github.com/minikart/commerce-api/internal/api/middleware"
)

// sessionCookie builds the cookie carrying the session token: HttpOnly,
// SameSite=Strict, Secure only in production. No Expires is set — the
// cookie lives for the browser session; the token carries its own expiry.
func sessionCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	}
}

// clearedSessionCookie expires the session cookie with the same attributes
// used at set-time. MaxAge<0 emits Max-Age=0 on the wire.
func clearedSessionCookie(secure bool) *http.Cookie {
	c := sessionCookie("", secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
