package user

import (
	"fmt"
	"net/http"

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

// RegisterRoutes puts signup and login on the open group; the reset
// endpoint needs a token and sits behind the auth middleware.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.POST("/auth/signup", h.Signup)
	public.POST("/auth/login", h.Login)
	api.POST("/auth/admin-reset-password", h.ResetPassword)
}

type signupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) Signup(c echo.Context) error {
	var in signupInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pub, err := h.svc.Signup(c.Request().Context(), in.Username, in.Password, in.Role)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    pub,
	})
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var in loginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, pub, err := h.svc.Login(c.Request().Context(), in.Username, in.Password)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    map[string]string{"username": pub.Username, "role": pub.Role},
	})
}

type resetPasswordInput struct {
	TargetUsername string `json:"targetUsername"`
	NewPassword    string `json:"newPassword"`
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var in resetPasswordInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role := auth.RoleFromContext(c.Request().Context())
	if err := h.svc.ResetPassword(c.Request().Context(), role, in.TargetUsername, in.NewPassword); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.Message(err))
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Password for %s has been reset.", in.TargetUsername),
	})
}
