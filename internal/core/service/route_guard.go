package service

import (
	"strings"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// Decision is the outcome of a navigation check. Redirect is empty when the
// requested destination may render.
type Decision struct {
	Destination domain.Destination
	Redirect    domain.Destination
}

// Allowed reports whether the navigation renders without a redirect.
func (d Decision) Allowed() bool { return d.Redirect == "" }

// ResolveNavigation decides whether path is reachable.
//
// The root always redirects to login, whatever the session state. Protected
// destinations redirect to login unless authenticated. Public destinations,
// including login and registration for an authenticated user, always render.
// Paths outside the routing table resolve to the not-found destination.
func ResolveNavigation(path string, authenticated bool) Decision {
	dest := normalizePath(path)

	if dest == domain.RouteRoot {
		return Decision{Destination: dest, Redirect: domain.RouteLogin}
	}
	if !dest.Known() {
		return Decision{Destination: domain.RouteNotFound}
	}
	if dest.Protected() && !authenticated {
		return Decision{Destination: dest, Redirect: domain.RouteLogin}
	}
	return Decision{Destination: dest}
}

func normalizePath(path string) domain.Destination {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return domain.RouteRoot
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return domain.Destination(path)
}
