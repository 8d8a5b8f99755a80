package admission

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/beds/:bedId/admissions", h.HistoryByBed)
	api.GET("/beds/:bedId/admissions/current", h.CurrentPatient)
}

func (h *Handler) HistoryByBed(c echo.Context) error {
	bedID, err := strconv.Atoi(c.Param("bedId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bed id")
	}
	history, err := h.svc.HistoryByBed(c.Request().Context(), bedID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if history == nil {
		history = []*Admission{}
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) CurrentPatient(c echo.Context) error {
	bedID, err := strconv.Atoi(c.Param("bedId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bed id")
	}
	a, err := h.svc.CurrentPatient(c.Request().Context(), bedID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if a == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no open admission for this bed")
	}
	return c.JSON(http.StatusOK, a)
}
