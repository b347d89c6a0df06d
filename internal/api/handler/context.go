package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/commerce-api/internal/api/middleware"
)

// actorID extracts the authenticated user id injected by the Auth guard.
// Presence proves the guard ran; a protected handler reached without it is
// a wiring bug, surfaced as 401 rather than a panic.
func actorID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
