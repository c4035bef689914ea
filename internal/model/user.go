package model

import "time"

// User is a person who can hold bookings. Deleting a user also
// deletes all of that user's bookings (two-step transactional delete
// in the repository).
//
// Fields:
//  ID        – users.id
//  Name      – users.name
//  Email     – users.email (nullable)
//  IsAdmin   – users.is_admin
//  CreatedAt – users.created_at
type User struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
