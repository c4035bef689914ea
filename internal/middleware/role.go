package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seatplan/internal/utils"
)

// RequireAdmin rejects requests whose token does not carry the ADMIN
// role. It answers the "is this action authorized" question for the
// layout-mutation and user-deletion routes; the handlers behind it
// perform no authorization logic of their own.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != utils.AdminRole {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "admin access required"})
			}
			return next(c)
		}
	}
}
