// Package handler implements the JSON boundary of the API. Every
// response uses the {success, message?, ...payload} envelope; handlers
// translate repository sentinels into statuses and never perform
// authorization logic themselves (the admin middleware does).
package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"seatplan/internal/model"
)

// LayoutStore is the slice of the layout store the handlers need.
// Satisfied by repository.SeatRepo.
type LayoutStore interface {
	LoadLayout(ctx context.Context) ([]model.Item, error)
	ReplaceLayout(ctx context.Context, items []model.Item) error
	GetItem(ctx context.Context, id string) (*model.Item, error)
}

// BookingStore is the booking ledger surface. Satisfied by
// repository.BookingRepo.
type BookingStore interface {
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
	Create(ctx context.Context, b *model.Booking) error
	Cancel(ctx context.Context, seatID, date string) error
}

// UserGetter is the slice of the user store the booking handler needs
// to resolve the booker's display name. Satisfied by
// repository.UserRepo.
type UserGetter interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// UserStore is the user table surface. Satisfied by
// repository.UserRepo.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, name string, email *string, isAdmin bool) (uint64, error)
	DeleteWithBookings(ctx context.Context, id uint64) error
}

// fail writes the failure envelope with the given status.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}
