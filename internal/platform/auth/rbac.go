package auth

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Known roles. Role strings are stored uppercased.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Allow is the single authorization policy: a caller may perform an action
// requiring requiredRole when it holds that exact role, and ADMIN may perform
// anything. Every privileged operation routes through this function instead
// of ad-hoc role comparisons.
func Allow(role, requiredRole string) bool {
	if role == RoleAdmin {
		return true
	}
	return role == requiredRole
}

// RequireRole returns middleware that rejects callers whose role does not
// satisfy the Allow policy.
func RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if !Allow(role, requiredRole) {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("required role: %s", requiredRole))
			}
			return next(c)
		}
	}
}
