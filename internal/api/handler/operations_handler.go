package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// OperationsHandler accepts operator actions. Every action answers 202 and
// reports its outcome through the notification feed.
type OperationsHandler struct {
	ops ports.OperationsService
}

func NewOperationsHandler(ops ports.OperationsService) *OperationsHandler {
	return &OperationsHandler{ops: ops}
}

type acceptedResponse struct {
	Message string `json:"message"`
}

func accepted(c echo.Context) error {
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "accepted"})
}

func intParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// BlockDevice
//
// @Summary   Quarantine a USB device
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Device ID"
// @Success   202  {object}  acceptedResponse
// @Router    /api/v1/usb/devices/{id}/block [post]
func (h *OperationsHandler) BlockDevice(c echo.Context) error {
	h.ops.BlockDevice(c.Request().Context(), c.Param("id"))
	return accepted(c)
}

// AuthorizeDevice
//
// @Summary   Approve a USB device
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Device ID"
// @Success   202  {object}  acceptedResponse
// @Router    /api/v1/usb/devices/{id}/authorize [post]
func (h *OperationsHandler) AuthorizeDevice(c echo.Context) error {
	h.ops.AuthorizeDevice(c.Request().Context(), c.Param("id"))
	return accepted(c)
}

// RefreshUsb
//
// @Summary   Reload USB monitoring data
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Success   202  {object}  acceptedResponse
// @Router    /api/v1/usb/refresh [post]
func (h *OperationsHandler) RefreshUsb(c echo.Context) error {
	h.ops.UsbRefreshed(c.Request().Context())
	return accepted(c)
}

// Investigate
//
// @Summary   Flag an abnormal behavior for investigation
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "Behavior ID"
// @Success   202  {object}  acceptedResponse
// @Failure   400  {object}  map[string]string
// @Router    /api/v1/behaviors/{id}/investigate [post]
func (h *OperationsHandler) Investigate(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	h.ops.Investigate(c.Request().Context(), id)
	return accepted(c)
}

// InstallUpdate
//
// @Summary   Install a pending system update
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "Update ID"
// @Success   202  {object}  acceptedResponse
// @Failure   400  {object}  map[string]string
// @Router    /api/v1/updates/{id}/install [post]
func (h *OperationsHandler) InstallUpdate(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	h.ops.InstallUpdate(c.Request().Context(), id)
	return accepted(c)
}

// Mitigate
//
// @Summary   Start mitigating a vulnerability
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "Vulnerability ID"
// @Success   202  {object}  acceptedResponse
// @Failure   400  {object}  map[string]string
// @Router    /api/v1/vulnerabilities/{id}/mitigate [post]
func (h *OperationsHandler) Mitigate(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	h.ops.Mitigate(c.Request().Context(), id)
	return accepted(c)
}

// StartScan
//
// @Summary   Run a full system scan
// @Tags      operations
// @Produce   json
// @Security  BearerAuth
// @Success   202  {object}  acceptedResponse
// @Router    /api/v1/system/scan [post]
func (h *OperationsHandler) StartScan(c echo.Context) error {
	h.ops.StartScan(c.Request().Context())
	return accepted(c)
}
