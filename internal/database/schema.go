package database

import (
	"context"
	"database/sql"
)

// Schema statements for the three tables. Bookings carry a
// UNIQUE(seat_id, booking_date) key: it is the sole safeguard against
// two clients booking the same seat for the same date, so it must
// exist before the server accepts traffic. Seat ids are not foreign
// keys from bookings: layout replacement deletes and reinserts every
// seat while existing bookings survive.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NULL,
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id VARCHAR(16) NOT NULL PRIMARY KEY,
		seat_number VARCHAR(255) NOT NULL DEFAULT '',
		seat_type ENUM('desk','meeting_room','label') NOT NULL DEFAULT 'desk',
		x_position INT NOT NULL DEFAULT 0,
		y_position INT NOT NULL DEFAULT 0,
		width INT NOT NULL DEFAULT 1,
		height INT NOT NULL DEFAULT 1,
		is_available TINYINT(1) NOT NULL DEFAULT 1
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		user_name VARCHAR(255) NOT NULL DEFAULT '',
		seat_id VARCHAR(16) NOT NULL,
		booking_date DATE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_seat_date (seat_id, booking_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
