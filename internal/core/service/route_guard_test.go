package service

import (
	"testing"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

func TestResolveNavigation(t *testing.T) {
	cases := []struct {
		path          string
		authenticated bool
		wantDest      domain.Destination
		wantRedirect  domain.Destination
	}{
		{"/", false, domain.RouteRoot, domain.RouteLogin},
		{"/", true, domain.RouteRoot, domain.RouteLogin},
		{"", true, domain.RouteRoot, domain.RouteLogin},
		{"/login", false, domain.RouteLogin, ""},
		{"/login", true, domain.RouteLogin, ""},
		{"/register", true, domain.RouteRegister, ""},
		{"/dashboard", false, domain.RouteDashboard, domain.RouteLogin},
		{"/dashboard", true, domain.RouteDashboard, ""},
		{"/dashboard/", true, domain.RouteDashboard, ""},
		{"/settings?tab=audit", false, domain.RouteSettings, domain.RouteLogin},
		{"/usb-monitoring#devices", true, domain.RouteUsbMonitoring, ""},
		{"/nowhere", false, domain.RouteNotFound, ""},
		{"/nowhere", true, domain.RouteNotFound, ""},
		{"/Dashboard", true, domain.RouteNotFound, ""},
		{"/not-found", false, domain.RouteNotFound, ""},
	}

	for _, tc := range cases {
		got := ResolveNavigation(tc.path, tc.authenticated)
		if got.Destination != tc.wantDest || got.Redirect != tc.wantRedirect {
			t.Fatalf("ResolveNavigation(%q, %v) = %+v, want dest=%q redirect=%q",
				tc.path, tc.authenticated, got, tc.wantDest, tc.wantRedirect)
		}
		if got.Allowed() != (tc.wantRedirect == "") {
			t.Fatalf("ResolveNavigation(%q, %v).Allowed() = %v", tc.path, tc.authenticated, got.Allowed())
		}
	}
}

func TestResolveNavigation_EveryProtectedDestination(t *testing.T) {
	for _, dest := range domain.ProtectedDestinations() {
		if d := ResolveNavigation(string(dest), false); d.Redirect != domain.RouteLogin {
			t.Fatalf("%s reachable without a session", dest)
		}
		if d := ResolveNavigation(string(dest), true); !d.Allowed() {
			t.Fatalf("%s blocked for an authenticated session", dest)
		}
	}
}
