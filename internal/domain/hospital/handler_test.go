package hospital

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandlerHospitalsSummaryEmptyIsArray(t *testing.T) {
	h := NewHandler(NewService(&repoMock{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/hospitals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.HospitalsSummary(c); err != nil {
		t.Fatalf("HospitalsSummary: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestHandlerOccupancyByHospital(t *testing.T) {
	h := NewHandler(NewService(&repoMock{counts: []*BedCounts{
		{Name: "City General", Total: 4, Available: 1},
	}}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/occupancy-by-hospital", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.OccupancyByHospital(c); err != nil {
		t.Fatalf("OccupancyByHospital: %v", err)
	}
	var got []Occupancy
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "City General" || got[0].OccupancyPercentage != 75 {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestHandlerWardAvailabilityBadID(t *testing.T) {
	h := NewHandler(NewService(&repoMock{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/hospitals/x/availability", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("x")

	err := h.WardAvailability(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
