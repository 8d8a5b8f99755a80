package bed

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/beds", h.ListBeds)
	api.POST("/beds", h.CreateBed, auth.RequireRole(auth.RoleAdmin))
	api.DELETE("/beds/:bedId", h.DeleteBed)
}

func (h *Handler) ListBeds(c echo.Context) error {
	beds, err := h.svc.ListBeds(c.Request().Context(), c.QueryParam("specialty_type"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if beds == nil {
		beds = []*Bed{}
	}
	return c.JSON(http.StatusOK, beds)
}

func (h *Handler) CreateBed(c echo.Context) error {
	var b Bed
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateBed(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) DeleteBed(c echo.Context) error {
	bedID, err := strconv.Atoi(c.Param("bedId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bed id")
	}
	if err := h.svc.DeleteBed(c.Request().Context(), bedID); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bed deleted successfully"})
}
