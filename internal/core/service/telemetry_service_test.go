package service

import (
	"strings"
	"testing"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

func TestTelemetry_Dashboard(t *testing.T) {
	svc := NewTelemetryService(&seqRand{vals: []int{0}})

	got := svc.Dashboard(45)
	if got.RiskScore != 45 || got.RiskBand != domain.RiskMedium {
		t.Fatalf("unexpected risk: %d %s", got.RiskScore, got.RiskBand)
	}
	if len(got.NetworkActivity) != 7 || got.NetworkActivity[0].Day != "Mon" || got.NetworkActivity[6].Day != "Sun" {
		t.Fatalf("expected a Mon..Sun week, got %+v", got.NetworkActivity)
	}
	if got.Vulnerabilities != 10 || got.SecuredData != 80 || got.MonitoredUsers != 70 {
		t.Fatalf("unexpected floors: %+v", got)
	}
	if len(got.ThreatTypes) != 4 {
		t.Fatalf("expected 4 threat types, got %d", len(got.ThreatTypes))
	}

	if b := svc.Dashboard(-5); b.RiskScore != 0 || b.RiskBand != domain.RiskLow {
		t.Fatalf("negative score not clamped: %+v", b)
	}
}

func TestTelemetry_UsbMonitoring(t *testing.T) {
	svc := NewTelemetryService(&seqRand{vals: []int{0}})

	got := svc.UsbMonitoring()
	if len(got.Devices) != 8 {
		t.Fatalf("expected 8 devices, got %d", len(got.Devices))
	}
	d := got.Devices[0]
	if d.ID != "usb-1" || got.Devices[7].ID != "usb-8" {
		t.Fatalf("unexpected ids: %s..%s", d.ID, got.Devices[7].ID)
	}
	if d.LastConnected != "1 hour ago" {
		t.Fatalf("expected singular hour, got %q", d.LastConnected)
	}
	if d.Status != domain.UsbAuthorized || d.DeviceName != "SanDisk Storage Device" || d.MalwareDetected || d.Encrypted {
		t.Fatalf("unexpected device: %+v", d)
	}
	if got.Metrics.AuthorizedDevices != 10 || got.Metrics.ScannedFiles != 100 {
		t.Fatalf("unexpected metrics: %+v", got.Metrics)
	}
}

func TestTelemetry_UsbMonitoring_PluralHours(t *testing.T) {
	svc := NewTelemetryService(&seqRand{vals: []int{5}})
	if got := svc.UsbMonitoring().Devices[0].LastConnected; got != "6 hours ago" {
		t.Fatalf("expected plural form, got %q", got)
	}
}

func TestTelemetry_UserBehavior(t *testing.T) {
	svc := NewTelemetryService(&seqRand{vals: []int{0}})

	all := svc.UserBehavior("")
	if len(all.LoginTimes) != 24 || len(all.Locations) != 6 || len(all.Behaviors) != 5 || len(all.DataAccess) != 4 {
		t.Fatalf("unexpected shape: %d %d %d %d", len(all.LoginTimes), len(all.Locations), len(all.Behaviors), len(all.DataAccess))
	}
	if all.LoginTimes[3].Abnormal != 2 || all.LoginTimes[12].Normal != 15 || all.LoginTimes[20].Normal != 3 {
		t.Fatalf("unexpected buckets: %+v", all.LoginTimes)
	}

	if got := svc.UserBehavior("ALL"); len(got.Behaviors) != 5 {
		t.Fatalf("all should keep every entry, got %d", len(got.Behaviors))
	}

	cardio := svc.UserBehavior("cardiology")
	if len(cardio.Behaviors) != 1 || !strings.EqualFold(cardio.Behaviors[0].Department, "Cardiology") {
		t.Fatalf("unexpected filter result: %+v", cardio.Behaviors)
	}

	if got := svc.UserBehavior("Dermatology"); len(got.Behaviors) != 0 {
		t.Fatalf("expected no matches, got %+v", got.Behaviors)
	}
}

func TestTelemetry_SystemSecurity(t *testing.T) {
	got := NewTelemetryService(nil).SystemSecurity()

	if len(got.Vulnerabilities) != 5 || len(got.Updates) != 4 {
		t.Fatalf("unexpected counts: %d vulns, %d updates", len(got.Vulnerabilities), len(got.Updates))
	}
	want := map[domain.Severity]int{
		domain.SeverityCritical: 1,
		domain.SeverityHigh:     2,
		domain.SeverityMedium:   1,
		domain.SeverityLow:      1,
	}
	for sev, n := range want {
		if got.Status.Vulnerabilities[sev] != n {
			t.Fatalf("%s: expected %d, got %d", sev, n, got.Status.Vulnerabilities[sev])
		}
	}
}

func TestTelemetry_RiskAnalysis(t *testing.T) {
	svc := NewTelemetryService(nil)

	got := svc.RiskAnalysis(150)
	if got.Score != 100 || got.Band != domain.RiskHigh {
		t.Fatalf("expected clamped high score, got %d %s", got.Score, got.Band)
	}
	if len(got.Factors) != 5 || len(got.Incidents) != 4 {
		t.Fatalf("unexpected counts: %d factors, %d incidents", len(got.Factors), len(got.Incidents))
	}
	if b := svc.RiskAnalysis(29).Band; b != domain.RiskLow {
		t.Fatalf("29 should be low, got %s", b)
	}
	if b := svc.RiskAnalysis(70).Band; b != domain.RiskHigh {
		t.Fatalf("70 should be high, got %s", b)
	}
}
