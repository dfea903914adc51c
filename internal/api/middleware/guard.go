package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/service"
	"github.com/mediguard/security-dashboard/internal/pkg/metrics"
)

// CtxDestination holds the domain.Destination a navigation resolved to.
const CtxDestination = "destination"

// RouteGuard applies the navigation rules to page requests: a redirect
// decision becomes a 302, anything else proceeds with the resolved
// destination stored on the context.
func RouteGuard(session SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := service.ResolveNavigation(c.Request().URL.Path, session.Snapshot().Authenticated())
			if !decision.Allowed() {
				metrics.GuardRedirectsTotal.
					WithLabelValues(string(decision.Destination), string(decision.Redirect)).
					Inc()
				return c.Redirect(http.StatusFound, string(decision.Redirect))
			}

			c.Set(CtxDestination, decision.Destination)
			return next(c)
		}
	}
}
