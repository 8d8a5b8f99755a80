package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bedboard/bedboard/internal/platform/db"
)

// The liveness endpoint is served on the public API group, so its path is
// /api/v1/health and it reflects the datastore, not just the process.
func TestHealthEndpointReportsDatastore(t *testing.T) {
	e := echo.New()
	public := e.Group("/api/v1")
	public.GET("/health", db.HealthHandler(globalDB.Pool))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status field = %q, want healthy", body.Status)
	}
}
