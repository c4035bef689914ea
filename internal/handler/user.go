package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"seatplan/internal/repository"
)

// UserHandler serves the user roster that feeds the booking form.
type UserHandler struct {
	Users UserStore
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users UserStore) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// List handles GET /v1/users, ordered by name.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": users})
}

type createUserRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	IsAdmin bool    `json:"is_admin"`
}

// Create handles POST /v1/users. Only the name is required.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "Name is required")
	}
	id, err := h.Users.Create(c.Request().Context(), req.Name, req.Email, req.IsAdmin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to add user")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user_id": id,
		"message": "User added successfully",
	})
}

// Delete handles DELETE /v1/users/:id. The user and every booking the
// user holds disappear in one atomic operation; an unknown id leaves
// both tables unchanged.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.Users.DeleteWithBookings(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to delete user")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User deleted successfully"})
}
