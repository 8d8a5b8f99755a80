package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	token, err := issuer.Issue(7, RoleStaff)
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(issuer)(func(c echo.Context) error {
		ctx := c.Request().Context()
		if UserIDFromContext(ctx) != 7 {
			t.Errorf("expected user_id 7, got %d", UserIDFromContext(ctx))
		}
		if RoleFromContext(ctx) != RoleStaff {
			t.Errorf("expected role STAFF, got %s", RoleFromContext(ctx))
		}
		return nil
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(issuer)(func(c echo.Context) error { return nil })
	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	e := echo.New()

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := Middleware(issuer)(func(c echo.Context) error { return nil })
		err := h(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	expired := NewIssuer([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue(1, RoleStaff)
	if err != nil {
		t.Fatal(err)
	}

	issuer := NewIssuer([]byte("test-secret"), time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(issuer)(func(c echo.Context) error { return nil })
	err = h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %v", err)
	}
}
