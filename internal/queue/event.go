// Package queue defines message payloads exchanged over the message
// broker and the background consumer that audits them.
package queue

// Booking event actions.
const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
)

// BookingEvent is published whenever a booking is created or
// cancelled. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingEvent struct {
	Action     string `json:"action"` // "created" or "cancelled"
	BookingID  uint64 `json:"booking_id,omitempty"`
	SeatID     string `json:"seat_id"`
	Date       string `json:"booking_date"`
	UserID     uint64 `json:"user_id,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	OccurredAt string `json:"occurred_at"` // RFC3339, UTC
}
