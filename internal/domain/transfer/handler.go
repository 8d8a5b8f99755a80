package transfer

import (
	"fmt"
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
	api.POST("/transfers", h.CreateRequest)
	api.GET("/transfers", h.ListRequests)
	api.PATCH("/transfers/:id", h.DecideRequest)
	api.POST("/beds/:bedId/status", h.ChangeBedStatus)
	api.POST("/beds/transfer", h.TransferPatient)
}

type createRequestInput struct {
	PatientName       string  `json:"patient_name"`
	FromWard          string  `json:"from_ward"`
	RequiredSpecialty string  `json:"required_specialty"`
	Priority          string  `json:"priority"`
	ClinicalNotes     *string `json:"clinical_notes"`
}

func (h *Handler) CreateRequest(c echo.Context) error {
	var in createRequestInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req := &Request{
		PatientName:       in.PatientName,
		FromWard:          in.FromWard,
		RequiredSpecialty: in.RequiredSpecialty,
		Priority:          in.Priority,
		ClinicalNotes:     in.ClinicalNotes,
	}
	if err := h.svc.Create(c.Request().Context(), req); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Transfer request created.",
		"request": req,
	})
}

func (h *Handler) ListRequests(c echo.Context) error {
	reqs, err := h.svc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	if reqs == nil {
		reqs = []*Request{}
	}
	return c.JSON(http.StatusOK, reqs)
}

type decideInput struct {
	NewStatus     string `json:"new_status"`
	AssignedBedID *int   `json:"assigned_bed_id"`
}

func (h *Handler) DecideRequest(c echo.Context) error {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}
	var in decideInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req, automation, err := h.svc.Decide(c.Request().Context(), requestID, in.NewStatus, in.AssignedBedID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    fmt.Sprintf("Transfer %s", req.Status),
		"request":    req,
		"automation": automation,
	})
}

type bedStatusInput struct {
	NewStatus   string `json:"new_status"`
	PatientName string `json:"patient_name"`
}

func (h *Handler) ChangeBedStatus(c echo.Context) error {
	bedID, err := strconv.Atoi(c.Param("bedId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bed id")
	}
	var in bedStatusInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ChangeBedStatus(c.Request().Context(), bedID, in.NewStatus, in.PatientName); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

type transferPatientInput struct {
	SourceBedID int    `json:"sourceBedId"`
	TargetBedID int    `json:"targetBedId"`
	PatientName string `json:"patientName"`
}

func (h *Handler) TransferPatient(c echo.Context) error {
	var in transferPatientInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.TransferPatient(c.Request().Context(), in.SourceBedID, in.TargetBedID, in.PatientName); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Patient transferred successfully",
	})
}
