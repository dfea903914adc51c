package domain

// Destination is a navigable dashboard path.
type Destination string

const (
	RouteRoot     Destination = "/"
	RouteLogin    Destination = "/login"
	RouteRegister Destination = "/register"
	RouteNotFound Destination = "/not-found"

	RouteDashboard      Destination = "/dashboard"
	RouteRiskAnalysis   Destination = "/risk-analysis"
	RouteUsbMonitoring  Destination = "/usb-monitoring"
	RouteUserBehavior   Destination = "/user-behavior"
	RouteSystemSecurity Destination = "/system-security"
	RouteSettings       Destination = "/settings"
)

// Landing is where a successful login or registration navigates to.
const Landing = RouteDashboard

// routeAccess lists every known destination; true marks it protected.
var routeAccess = map[Destination]bool{
	RouteRoot:           false,
	RouteLogin:          false,
	RouteRegister:       false,
	RouteNotFound:       false,
	RouteDashboard:      true,
	RouteRiskAnalysis:   true,
	RouteUsbMonitoring:  true,
	RouteUserBehavior:   true,
	RouteSystemSecurity: true,
	RouteSettings:       true,
}

// Known reports whether d is part of the routing table.
func (d Destination) Known() bool {
	_, ok := routeAccess[d]
	return ok
}

// Protected reports whether d requires an authenticated session.
// Unknown destinations are not protected; they resolve to not-found.
func (d Destination) Protected() bool {
	return routeAccess[d]
}

// ProtectedDestinations returns the protected part of the routing table.
func ProtectedDestinations() []Destination {
	return []Destination{
		RouteDashboard,
		RouteRiskAnalysis,
		RouteUsbMonitoring,
		RouteUserBehavior,
		RouteSystemSecurity,
		RouteSettings,
	}
}
