package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

type stubPinger struct {
	name string
	err  error
}

func (p stubPinger) Name() string { return p.name }
func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthHandler_Liveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler(t *testing.T) {
	cases := []struct {
		name     string
		deps     []Pinger
		wantCode int
		wantBody string
	}{
		{"no backends", nil, http.StatusOK, "ok"},
		{"all healthy", []Pinger{stubPinger{name: "redis"}, stubPinger{name: "mongodb"}}, http.StatusOK, "ok"},
		{"one down", []Pinger{stubPinger{name: "redis"}, stubPinger{name: "mongodb", err: errors.New("refused")}}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewReadinessHandler(tc.deps...).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantBody || len(resp.Dependencies) != len(tc.deps) {
				t.Fatalf("unexpected body: %+v", resp)
			}
		})
	}
}

type stubFeed struct {
	lastLimit int
}

func (f *stubFeed) Recent(limit int) []domain.Notification {
	f.lastLimit = limit
	return []domain.Notification{{ID: "n1", Kind: domain.NotifyInfo, Title: "hello"}}
}

func TestNotificationHandler_List(t *testing.T) {
	feed := &stubFeed{}
	h := NewNotificationHandler(feed)
	e := echo.New()

	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/notifications", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || feed.lastLimit != defaultFeedLimit {
		t.Fatalf("expected default limit, got code %d limit %d", rec.Code, feed.lastLimit)
	}

	rec = httptest.NewRecorder()
	if err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/notifications?limit=5", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if feed.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", feed.lastLimit)
	}

	for _, raw := range []string{"0", "x"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/notifications?limit="+raw, nil), httptest.NewRecorder())
		if code := httpStatus(t, h.List(c)); code != http.StatusBadRequest {
			t.Fatalf("limit %q: expected 400, got %d", raw, code)
		}
	}
}
