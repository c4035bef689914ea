// Package repository implements data access for the floor plan and
// the booking ledger on top of database/sql. Sentinel errors let
// handlers distinguish failure scenarios: a uniqueness violation on a
// booking surfaces as ErrBookingExists, a missing cancel/delete target
// as a not-found error, and anything else is a persistence failure
// that already rolled back.
package repository

import "strings"

// isDuplicateKey reports whether err is a MySQL duplicate-key error
// (code 1062). Booking creation relies on this: the pre-check read is
// only an optimization, the UNIQUE(seat_id, booking_date) key is the
// source of truth when two writers race.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
