package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// SessionReader exposes the current session.
type SessionReader interface {
	Snapshot() domain.Session
}

// SessionBound rejects tokens whose subject is not the identity the session
// currently holds. Logging out, or logging in as someone else, therefore
// revokes every token issued before.
//
// Must run after Auth.
func SessionBound(session SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sub, _ := c.Get(CtxUserID).(string)
			snap := session.Snapshot()
			if !snap.Authenticated() || snap.Identity.ID != sub {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			return next(c)
		}
	}
}
