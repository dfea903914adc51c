package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// RBAC admits only the given roles, as read from the token claims set by
// Auth. Other callers get domain.ErrForbidden.
func RBAC(roles ...domain.Role) echo.MiddlewareFunc {
	permitted := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		permitted[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !permitted[domain.Role(role)] {
				return fmt.Errorf("role %q: %w", role, domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
