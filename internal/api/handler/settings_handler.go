package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get
//
// @Summary   Current settings
// @Tags      settings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.Settings
// @Router    /api/v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Get())
}

// Update replaces the settings document. Admin only.
//
// @Summary   Replace settings
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      domain.Settings  true  "Settings document"
// @Success   200   {object}  domain.Settings
// @Failure   400   {object}  map[string]string
// @Failure   403   {object}  map[string]string
// @Failure   422   {object}  map[string]string
// @Router    /api/v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req domain.Settings
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.settings.Update(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
