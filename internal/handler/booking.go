package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"seatplan/internal/model"
	"seatplan/internal/queue"
	"seatplan/internal/repository"
	"seatplan/internal/service"
)

// BookingHandler serves the booking ledger. Uniqueness of the
// (seat, date) pair is decided by the store, not here: the handler
// only maps the outcome onto the response envelope.
type BookingHandler struct {
	Bookings BookingStore
	Seats    LayoutStore
	Users    UserGetter

	// publish is swappable for tests; defaults to the RabbitMQ
	// publisher.
	publish func(context.Context, queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings BookingStore, seats LayoutStore, users UserGetter) *BookingHandler {
	if bookings == nil || seats == nil || users == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Seats: seats, Users: users, publish: service.PublishBookingEvent}
}

// List handles GET /v1/bookings?date=YYYY-MM-DD. The date defaults to
// today so the viewer's initial load needs no parameters.
func (h *BookingHandler) List(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().UTC().Format(model.DateLayout)
	}
	date, err := model.ParseDate(date)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid date")
	}
	bookings, err := h.Bookings.ListByDate(c.Request().Context(), date)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load bookings")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "date": date, "bookings": bookings})
}

type createBookingRequest struct {
	SeatID string `json:"seat_id"`
	UserID uint64 `json:"user_id"`
	Date   string `json:"date"`
}

// Create handles POST /v1/bookings. The flow is: validate input,
// confirm the target is a bookable place, insert. A conflict on the
// (seat, date) pair — whether caught by the pre-check read or by the
// uniqueness key under a race — comes back as 409 with the ledger
// unchanged.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.SeatID == "" || req.UserID == 0 || req.Date == "" {
		return fail(c, http.StatusBadRequest, "missing required fields")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid date")
	}

	ctx := c.Request().Context()
	item, err := h.Seats.GetItem(ctx, req.SeatID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return fail(c, http.StatusNotFound, "seat not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to check seat")
	}
	if !item.Bookable() {
		return fail(c, http.StatusBadRequest, "labels cannot be booked")
	}

	// The booker's name is captured at booking time so the ledger stays
	// readable after the user is deleted. It comes from the store, not
	// the request.
	user, err := h.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to check user")
	}

	b := model.Booking{SeatID: req.SeatID, Date: date, UserID: req.UserID, UserName: user.Name}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrBookingExists) {
			return fail(c, http.StatusConflict, "This seat is already booked for the selected date")
		}
		return fail(c, http.StatusInternalServerError, "failed to create booking")
	}

	go func() {
		_ = h.publish(context.Background(), queue.BookingEvent{
			Action:     queue.ActionCreated,
			BookingID:  b.ID,
			SeatID:     b.SeatID,
			Date:       b.Date,
			UserID:     b.UserID,
			UserName:   b.UserName,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"success":    true,
		"booking_id": b.ID,
		"message":    "Booking created successfully",
	})
}

type cancelBookingRequest struct {
	SeatID string `json:"seat_id"`
	Date   string `json:"date"`
}

// Cancel handles DELETE /v1/bookings. Cancelling a pair with no
// booking reports not found and leaves the ledger unchanged.
func (h *BookingHandler) Cancel(c echo.Context) error {
	var req cancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.SeatID == "" || req.Date == "" {
		return fail(c, http.StatusBadRequest, "missing required fields")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid date")
	}

	if err := h.Bookings.Cancel(c.Request().Context(), req.SeatID, date); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return fail(c, http.StatusNotFound, "No booking found to cancel")
		}
		return fail(c, http.StatusInternalServerError, "failed to cancel booking")
	}

	go func() {
		_ = h.publish(context.Background(), queue.BookingEvent{
			Action:     queue.ActionCancelled,
			SeatID:     req.SeatID,
			Date:       date,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Booking cancelled successfully"})
}
