// Package mirror keeps a client-side copy of the bookings for the
// currently viewed date so the UI can reflect mutations immediately
// instead of re-querying after every change.
//
// The mirror never mutates itself on a failed backend call. Callers
// receive an explicit Outcome for each operation and decide whether to
// apply a local fallback; the historical behavior of silently applying
// every mutation on network failure is acceptable only for a
// best-effort single-office demo and must stay a caller choice.
package mirror

import "seatplan/internal/model"

// Outcome classifies the result of a booking mutation as seen by the
// caller-facing layer.
type Outcome int

const (
	// OutcomeOK means the backend accepted the mutation.
	OutcomeOK Outcome = iota
	// OutcomeConflict means the seat was already booked for the date.
	OutcomeConflict
	// OutcomeNotFound means there was no booking to cancel.
	OutcomeNotFound
	// OutcomeNetworkError means the backend could not be reached; the
	// true ledger state is unknown.
	OutcomeNetworkError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeConflict:
		return "conflict"
	case OutcomeNotFound:
		return "not found"
	case OutcomeNetworkError:
		return "network error"
	default:
		return "unknown"
	}
}

// Mirror is the local booking list for one calendar date. It is not
// safe for concurrent use; the UI drives it from a single goroutine.
type Mirror struct {
	date     string
	bookings []model.Booking
}

// New returns an empty mirror for the given date.
func New(date string) *Mirror {
	return &Mirror{date: date}
}

// Date returns the date the mirror currently tracks.
func (m *Mirror) Date() string { return m.date }

// Load replaces the mirror contents with the ledger's bookings for a
// (possibly new) date, discarding any optimistic state.
func (m *Mirror) Load(date string, bookings []model.Booking) {
	m.date = date
	m.bookings = append(m.bookings[:0:0], bookings...)
}

// Bookings returns a copy of the mirrored bookings.
func (m *Mirror) Bookings() []model.Booking {
	return append([]model.Booking(nil), m.bookings...)
}

// Booked reports whether the seat is booked on the mirrored date and
// returns the booking when it is.
func (m *Mirror) Booked(seatID string) (model.Booking, bool) {
	for _, b := range m.bookings {
		if b.SeatID == seatID {
			return b, true
		}
	}
	return model.Booking{}, false
}

// ApplyCreate records a booking locally. It refuses bookings for a
// different date and preserves the one-booking-per-seat invariant by
// reporting OutcomeConflict without modifying the mirror.
func (m *Mirror) ApplyCreate(b model.Booking) Outcome {
	if b.Date != m.date {
		return OutcomeNotFound
	}
	if _, ok := m.Booked(b.SeatID); ok {
		return OutcomeConflict
	}
	m.bookings = append(m.bookings, b)
	return OutcomeOK
}

// ApplyCancel removes the booking for the seat, reporting
// OutcomeNotFound when no such booking is mirrored.
func (m *Mirror) ApplyCancel(seatID string) Outcome {
	for i, b := range m.bookings {
		if b.SeatID == seatID {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return OutcomeOK
		}
	}
	return OutcomeNotFound
}
