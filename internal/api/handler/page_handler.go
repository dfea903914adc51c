package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// PageHandler serves the navigable destinations. Public pages return a
// descriptor, protected pages return the data the page renders.
type PageHandler struct {
	session   SessionReader
	telemetry ports.TelemetryService
	settings  ports.SettingsService
}

func NewPageHandler(session SessionReader, telemetry ports.TelemetryService, settings ports.SettingsService) *PageHandler {
	return &PageHandler{session: session, telemetry: telemetry, settings: settings}
}

type pageResponse struct {
	Page  domain.Destination `json:"page"`
	Title string             `json:"title"`
	User  *domain.Identity   `json:"user,omitempty"`
	Data  any                `json:"data,omitempty"`
}

type formDescriptor struct {
	Fields []string           `json:"fields"`
	Submit string             `json:"submit"`
	Link   domain.Destination `json:"link"`
}

var pageTitles = map[domain.Destination]string{
	domain.RouteLogin:          "Sign in",
	domain.RouteRegister:       "Create an account",
	domain.RouteNotFound:       "Page not found",
	domain.RouteDashboard:      "Security Dashboard",
	domain.RouteRiskAnalysis:   "Risk Analysis",
	domain.RouteUsbMonitoring:  "USB Monitoring",
	domain.RouteUserBehavior:   "User Behavior",
	domain.RouteSystemSecurity: "System Security",
	domain.RouteSettings:       "Settings",
}

// Root never renders; the route guard always redirects it.
func (h *PageHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, string(domain.RouteLogin))
}

// Login describes the sign-in form.
//
// @Summary  Login page
// @Tags     pages
// @Produce  json
// @Success  200  {object}  pageResponse
// @Router   /login [get]
func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, h.public(domain.RouteLogin, formDescriptor{
		Fields: []string{"email", "password"},
		Submit: "/auth/login",
		Link:   domain.RouteRegister,
	}))
}

// Register describes the account creation form.
//
// @Summary  Registration page
// @Tags     pages
// @Produce  json
// @Success  200  {object}  pageResponse
// @Router   /register [get]
func (h *PageHandler) Register(c echo.Context) error {
	return c.JSON(http.StatusOK, h.public(domain.RouteRegister, formDescriptor{
		Fields: []string{"username", "email", "password", "confirm_password", "role", "department"},
		Submit: "/auth/register",
		Link:   domain.RouteLogin,
	}))
}

// NotFound renders the fallback page for paths outside the routing table.
func (h *PageHandler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, h.public(domain.RouteNotFound, nil))
}

// Protected renders whichever protected destination the guard resolved.
//
// @Summary  Protected dashboard page
// @Tags     pages
// @Produce  json
// @Param    department  query     string  false  "User behavior department filter"
// @Success  200         {object}  pageResponse
// @Failure  302         {string}  string  "redirect to /login"
// @Router   /dashboard [get]
// @Router   /risk-analysis [get]
// @Router   /usb-monitoring [get]
// @Router   /user-behavior [get]
// @Router   /system-security [get]
// @Router   /settings [get]
func (h *PageHandler) Protected(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return c.Redirect(http.StatusFound, string(domain.RouteLogin))
	}

	dest := ctxDestination(c)
	var data any
	switch dest {
	case domain.RouteDashboard:
		data = h.telemetry.Dashboard(identity.RiskScore)
	case domain.RouteRiskAnalysis:
		data = h.telemetry.RiskAnalysis(identity.RiskScore)
	case domain.RouteUsbMonitoring:
		data = h.telemetry.UsbMonitoring()
	case domain.RouteUserBehavior:
		data = h.telemetry.UserBehavior(c.QueryParam("department"))
	case domain.RouteSystemSecurity:
		data = h.telemetry.SystemSecurity()
	case domain.RouteSettings:
		data = h.settings.Get()
	default:
		return h.NotFound(c)
	}

	return c.JSON(http.StatusOK, pageResponse{
		Page:  dest,
		Title: pageTitles[dest],
		User:  &identity,
		Data:  data,
	})
}

func (h *PageHandler) public(dest domain.Destination, data any) pageResponse {
	return pageResponse{Page: dest, Title: pageTitles[dest], Data: data}
}
