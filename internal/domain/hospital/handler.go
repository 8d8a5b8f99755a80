package hospital

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bedboard/bedboard/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the unauthenticated public surface and the
// token-gated analytics surface separately.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.GET("/public/hospitals", h.HospitalsSummary)
	public.GET("/public/hospitals/:id/availability", h.WardAvailability)
	api.GET("/analytics/occupancy-by-hospital", h.OccupancyByHospital)
}

func (h *Handler) HospitalsSummary(c echo.Context) error {
	summaries, err := h.svc.HospitalsSummary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if summaries == nil {
		summaries = []*Summary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

func (h *Handler) WardAvailability(c echo.Context) error {
	hospitalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hospital id")
	}
	wards, err := h.svc.WardAvailability(c.Request().Context(), hospitalID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if wards == nil {
		wards = []*WardAvailability{}
	}
	return c.JSON(http.StatusOK, wards)
}

func (h *Handler) OccupancyByHospital(c echo.Context) error {
	occupancy, err := h.svc.OccupancyByHospital(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, occupancy)
}
