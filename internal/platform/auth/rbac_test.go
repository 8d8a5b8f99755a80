package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		role, required string
		want           bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleStaff, true},
		{RoleStaff, RoleStaff, true},
		{RoleStaff, RoleAdmin, false},
		{"", RoleAdmin, false},
		{"", RoleStaff, false},
	}
	for _, tc := range cases {
		if got := Allow(tc.role, tc.required); got != tc.want {
			t.Errorf("Allow(%q, %q) = %v, want %v", tc.role, tc.required, got, tc.want)
		}
	}
}

func requestWithRole(e *echo.Echo, role string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		ctx := context.WithValue(req.Context(), RoleKey, role)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireRole_Allowed(t *testing.T) {
	e := echo.New()
	called := false
	h := RequireRole(RoleAdmin)(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := h(requestWithRole(e, RoleAdmin)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("handler was not invoked")
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	e := echo.New()
	h := RequireRole(RoleAdmin)(func(c echo.Context) error {
		t.Error("handler should not be invoked")
		return nil
	})

	err := h(requestWithRole(e, RoleStaff))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
}
