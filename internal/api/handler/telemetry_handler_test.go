package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/service"
)

func TestTelemetryHandler_RiskAnalysis(t *testing.T) {
	h := NewTelemetryHandler(signedInAs(domain.Identity{ID: "1", RiskScore: 140}), service.NewTelemetryService(nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/risk-analysis", nil), rec)
	if err := h.RiskAnalysis(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report domain.RiskReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if report.Score != domain.MaxRiskScore {
		t.Fatalf("expected clamped score 100, got %d", report.Score)
	}
	if len(report.Factors) != 5 || len(report.Incidents) != 4 {
		t.Fatalf("unexpected report shape: %d factors, %d incidents", len(report.Factors), len(report.Incidents))
	}
}

func TestTelemetryHandler_RequiresSession(t *testing.T) {
	h := NewTelemetryHandler(sessionSnapshot{State: domain.StateAnonymous}, service.NewTelemetryService(nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), httptest.NewRecorder())
	if code := httpStatus(t, h.Dashboard(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestTelemetryHandler_UsbMonitoring(t *testing.T) {
	h := NewTelemetryHandler(signedInAs(domain.Identity{ID: "1"}), service.NewTelemetryService(nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/usb-monitoring", nil), rec)
	if err := h.UsbMonitoring(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var report domain.UsbReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(report.Devices) != 8 {
		t.Fatalf("expected 8 devices, got %d", len(report.Devices))
	}
}
