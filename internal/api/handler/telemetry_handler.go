package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// TelemetryHandler exposes the simulated security data to API clients.
// Risk-dependent views use the risk score of the session identity.
type TelemetryHandler struct {
	session   SessionReader
	telemetry ports.TelemetryService
}

func NewTelemetryHandler(session SessionReader, telemetry ports.TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{session: session, telemetry: telemetry}
}

// Dashboard
//
// @Summary   Dashboard overview
// @Tags      telemetry
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.DashboardSummary
// @Failure   401  {object}  map[string]string
// @Router    /api/v1/dashboard [get]
func (h *TelemetryHandler) Dashboard(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.telemetry.Dashboard(identity.RiskScore))
}

// RiskAnalysis
//
// @Summary   Risk breakdown for the signed-in user
// @Tags      telemetry
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.RiskReport
// @Failure   401  {object}  map[string]string
// @Router    /api/v1/risk-analysis [get]
func (h *TelemetryHandler) RiskAnalysis(c echo.Context) error {
	identity, err := currentIdentity(h.session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.telemetry.RiskAnalysis(identity.RiskScore))
}

// UsbMonitoring
//
// @Summary   USB device inventory
// @Tags      telemetry
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.UsbReport
// @Router    /api/v1/usb-monitoring [get]
func (h *TelemetryHandler) UsbMonitoring(c echo.Context) error {
	return c.JSON(http.StatusOK, h.telemetry.UsbMonitoring())
}

// UserBehavior
//
// @Summary   Login patterns and anomalies
// @Tags      telemetry
// @Produce   json
// @Security  BearerAuth
// @Param     department  query     string  false  "Department filter, case-insensitive; all keeps every entry"
// @Success   200         {object}  domain.BehaviorReport
// @Router    /api/v1/user-behavior [get]
func (h *TelemetryHandler) UserBehavior(c echo.Context) error {
	return c.JSON(http.StatusOK, h.telemetry.UserBehavior(c.QueryParam("department")))
}

// SystemSecurity
//
// @Summary   Vulnerabilities and pending updates
// @Tags      telemetry
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.SecurityReport
// @Router    /api/v1/system-security [get]
func (h *TelemetryHandler) SystemSecurity(c echo.Context) error {
	return c.JSON(http.StatusOK, h.telemetry.SystemSecurity())
}
