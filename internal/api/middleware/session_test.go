package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runSessionBound(t *testing.T, session SessionReader, sub any) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sub != nil {
		c.Set(CtxUserID, sub)
	}

	called := false
	handler := SessionBound(session)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestSessionBound_MatchingSubject(t *testing.T) {
	rec, called := runSessionBound(t, signedIn("user_1"), "user_1")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got called=%v code=%d", called, rec.Code)
	}
}

func TestSessionBound_Rejects(t *testing.T) {
	cases := map[string]struct {
		session SessionReader
		sub     any
	}{
		"logged out":     {anonymous(), "user_1"},
		"other identity": {signedIn("user_2"), "user_1"},
		"missing claims": {signedIn("user_1"), nil},
	}
	for name, tc := range cases {
		rec, called := runSessionBound(t, tc.session, tc.sub)
		if called {
			t.Fatalf("%s: should not reach next", name)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}
