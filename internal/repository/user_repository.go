package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"seatplan/internal/model"
)

// ErrUserNotFound is returned when a user lookup or delete targets an
// id that does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides access to the users table.
type UserRepo struct {
	db       *sql.DB
	bookings *BookingRepo
}

// NewUserRepo constructs a UserRepo. The booking repo is needed for
// the cascading delete.
func NewUserRepo(db *sql.DB, bookings *BookingRepo) *UserRepo {
	return &UserRepo{db: db, bookings: bookings}
}

// List returns all users ordered by name.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, name, email, is_admin, created_at FROM users ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		var email sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		if email.Valid {
			e := email.String
			u.Email = &e
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID fetches a user by id, or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	const q = `SELECT id, name, email, is_admin, created_at FROM users WHERE id = ? LIMIT 1`
	var u model.User
	var email sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &email, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if email.Valid {
		e := email.String
		u.Email = &e
	}
	return u, nil
}

// Create inserts a user and returns its id. The name is required;
// email is optional.
func (r *UserRepo) Create(ctx context.Context, name string, email *string, isAdmin bool) (uint64, error) {
	name = strings.TrimSpace(name)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, is_admin) VALUES (?, ?, ?)`,
		name, email, isAdmin)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Count returns the number of users, used to decide whether first-run
// seeding is needed.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// DeleteWithBookings removes a user and every booking that user holds
// as a single atomic operation: bookings first, then the user row,
// both inside one transaction. A nonexistent user id rolls back and
// returns ErrUserNotFound with both tables unchanged.
func (r *UserRepo) DeleteWithBookings(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := r.bookings.DeleteByUserTx(ctx, tx, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
