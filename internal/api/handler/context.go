package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/api/middleware"
	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// SessionReader exposes the current session.
type SessionReader interface {
	Snapshot() domain.Session
}

// currentIdentity returns the identity the session holds. A session that
// lapsed between the guard and the handler is reported as 401.
func currentIdentity(session SessionReader) (domain.Identity, error) {
	snap := session.Snapshot()
	if !snap.Authenticated() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return *snap.Identity, nil
}

// ctxDestination reads the destination resolved by the route guard, falling
// back to the matched route path.
func ctxDestination(c echo.Context) domain.Destination {
	if d, ok := c.Get(middleware.CtxDestination).(domain.Destination); ok {
		return d
	}
	return domain.Destination(c.Path())
}
