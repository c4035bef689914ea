package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"seatplan/internal/handler"
	"seatplan/internal/middleware"
)

// Handlers groups everything the router needs to wire the API.
type Handlers struct {
	Auth     *handler.AuthHandler
	Layout   *handler.LayoutHandler
	Bookings *handler.BookingHandler
	Users    *handler.UserHandler
}

// Register wires all routes. Read endpoints are public; layout
// mutation and user deletion live behind the admin JWT gate — the
// handlers themselves trust that boundary and perform no authorization
// checks. The verb-to-operation mapping here is the only place that
// knows about HTTP methods and status-code conventions.
func Register(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	// Admin token issuance.
	e.POST("/v1/auth/admin", h.Auth.AdminLogin)

	// Floor plan and ledger reads, plus self-service booking.
	e.GET("/v1/seats", h.Layout.GetSeats)
	e.GET("/v1/bookings", h.Bookings.List)
	e.POST("/v1/bookings", h.Bookings.Create)
	e.DELETE("/v1/bookings", h.Bookings.Cancel)
	e.GET("/v1/users", h.Users.List)
	e.POST("/v1/users", h.Users.Create)

	// Admin-gated mutations.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	admin.POST("/layout", h.Layout.UpdateLayout)
	admin.POST("/layout/reset", h.Layout.ResetLayout)
	admin.DELETE("/users/:id", h.Users.Delete)
}
