package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"seatplan/internal/config"
	"seatplan/internal/utils"
)

// AuthHandler issues admin tokens. There are no per-user accounts for
// administration: one shared password, verified against a bcrypt hash
// from configuration, unlocks the admin-gated routes.
type AuthHandler struct {
	Cfg config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin handles POST /v1/auth/admin. On success it returns a
// bearer token for the admin routes along with its expiry.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Password == "" {
		return fail(c, http.StatusBadRequest, "Password is required")
	}
	if h.Cfg.AdminPasswordHash == "" {
		return fail(c, http.StatusInternalServerError, "admin access not configured")
	}
	if !utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "Invalid password")
	}
	tok, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.AdminTokenTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Authentication successful",
		"token":      tok.Token,
		"expires_at": tok.Exp.Format(time.RFC3339),
	})
}
