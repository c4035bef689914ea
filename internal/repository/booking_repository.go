package repository

import (
	"context"
	"database/sql"
	"errors"

	"seatplan/internal/model"
)

// ErrBookingExists is returned when a seat already has a booking for
// the requested date. Handlers should translate this into a conflict
// response.
var ErrBookingExists = errors.New("seat already booked for this date")

// ErrBookingNotFound is returned when cancelling a (seat, date) pair
// that has no booking.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo is the booking ledger: one reservation per (seat, date)
// pair, enforced by the UNIQUE(seat_id, booking_date) key.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// ListByDate returns all bookings for a calendar date. The user name
// prefers the current users row and falls back to the name captured at
// booking time for users deleted since.
func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	const q = `SELECT b.id, b.seat_id, DATE_FORMAT(b.booking_date, '%Y-%m-%d'),
	                  b.user_id, COALESCE(u.name, b.user_name), b.created_at
	           FROM bookings b
	           LEFT JOIN users u ON u.id = b.user_id
	           WHERE b.booking_date = ?
	           ORDER BY b.seat_id`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.SeatID, &b.Date, &b.UserID, &b.UserName, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Create inserts a booking, populating the generated ID. A read
// pre-checks the (seat, date) pair so the common double-book case
// fails fast, but the uniqueness key settles races: if two creates
// arrive near-simultaneously the store rejects the second insert and
// that loser receives ErrBookingExists, not the pre-check.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const check = `SELECT id FROM bookings WHERE seat_id = ? AND booking_date = ?`
	var existing uint64
	err := r.db.QueryRowContext(ctx, check, b.SeatID, b.Date).Scan(&existing)
	switch {
	case err == nil:
		return ErrBookingExists
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	const q = `INSERT INTO bookings (user_id, user_name, seat_id, booking_date) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.UserID, b.UserName, b.SeatID, b.Date)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrBookingExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Cancel removes the booking for a (seat, date) pair. It returns
// ErrBookingNotFound when no such booking exists, leaving the ledger
// unchanged.
func (r *BookingRepo) Cancel(ctx context.Context, seatID, date string) error {
	const q = `DELETE FROM bookings WHERE seat_id = ? AND booking_date = ?`
	res, err := r.db.ExecContext(ctx, q, seatID, date)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteByUserTx removes all bookings held by a user within an
// existing transaction. It is the first step of the two-step
// transactional user delete.
func (r *BookingRepo) DeleteByUserTx(ctx context.Context, tx *sql.Tx, userID uint64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE user_id = ?`, userID)
	return err
}
