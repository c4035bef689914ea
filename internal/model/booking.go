package model

import "time"

// DateLayout is the wire and storage format for booking dates. A
// booking covers exactly one calendar date; there is no time-of-day
// granularity and no multi-day reservation.
const DateLayout = "2006-01-02"

// ParseDate validates a calendar-date string and returns it in
// normalized YYYY-MM-DD form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// Booking reserves one place (desk or meeting room) for one person on
// one calendar date. For a fixed date a seat id appears at most once;
// the store's UNIQUE(seat_id, booking_date) key is the source of truth
// for that invariant. Bookings on different dates are independent.
//
// Fields:
//  ID        – bookings.id
//  SeatID    – bookings.seat_id (references seats.id)
//  Date      – bookings.booking_date, YYYY-MM-DD
//  UserID    – bookings.user_id
//  UserName  – bookings.user_name, denormalized display name
//  CreatedAt – bookings.created_at
type Booking struct {
	ID        uint64    `json:"id"`
	SeatID    string    `json:"seat_id"`
	Date      string    `json:"booking_date"`
	UserID    uint64    `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
