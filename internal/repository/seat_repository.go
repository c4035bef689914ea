package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"seatplan/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo is the layout store: the single source of truth for
// floor-plan geometry. All three item variants share the narrow
// `seats` schema; meeting-room name and size travel as a JSON blob in
// the seat_number column and are decoded on read.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{db: db} }

// seatRow mirrors the seats table for encoding and scanning.
type seatRow struct {
	ID         string
	SeatNumber string
	SeatType   string
	X, Y       int
	W, H       int
}

// encodeSeatRow converts an item into its persisted row. Rooms pack
// their payload into the seat_number blob; a room without a payload or
// any item with negative coordinates is malformed and aborts the
// enclosing replace before it can commit.
func encodeSeatRow(it model.Item) (seatRow, error) {
	if it.ID == "" {
		return seatRow{}, fmt.Errorf("item without id")
	}
	if it.X < 0 || it.Y < 0 {
		return seatRow{}, fmt.Errorf("item %s: negative grid position", it.ID)
	}
	row := seatRow{ID: it.ID, X: it.X, Y: it.Y, W: 1, H: 1}
	switch it.Kind {
	case model.KindDesk:
		row.SeatType = string(model.KindDesk)
		row.SeatNumber = "Desk " + it.ID
	case model.KindMeetingRoom:
		if it.Room == nil || it.Room.Name == "" || it.Room.Width < 1 || it.Room.Height < 1 {
			return seatRow{}, fmt.Errorf("room %s: malformed payload", it.ID)
		}
		blob, err := json.Marshal(it.Room)
		if err != nil {
			return seatRow{}, fmt.Errorf("room %s: %w", it.ID, err)
		}
		row.SeatType = string(model.KindMeetingRoom)
		row.SeatNumber = string(blob)
		row.W = it.Room.Width
		row.H = it.Room.Height
	case model.KindLabel:
		if it.Label == nil || it.Label.Text == "" {
			return seatRow{}, fmt.Errorf("label %s: empty text", it.ID)
		}
		row.SeatType = string(model.KindLabel)
		row.SeatNumber = it.Label.Text
	default:
		return seatRow{}, fmt.Errorf("item %s: unknown kind %q", it.ID, it.Kind)
	}
	return row, nil
}

// decodeSeatRow converts a persisted row back into an item. Unknown
// seat types and rooms whose blob fails to parse degrade to sensible
// defaults rather than failing the whole layout read.
func decodeSeatRow(row seatRow) model.Item {
	switch row.SeatType {
	case string(model.KindMeetingRoom):
		info := model.RoomInfo{Name: "Meeting Room", Width: row.W, Height: row.H}
		var decoded model.RoomInfo
		if err := json.Unmarshal([]byte(row.SeatNumber), &decoded); err == nil && decoded.Name != "" {
			info = decoded
		}
		if info.Width < 1 {
			info.Width = 2
		}
		if info.Height < 1 {
			info.Height = 2
		}
		return model.Item{ID: row.ID, Kind: model.KindMeetingRoom, X: row.X, Y: row.Y, Room: &info}
	case string(model.KindLabel):
		return model.NewLabel(row.ID, row.SeatNumber, row.X, row.Y)
	default:
		return model.NewDesk(row.ID, row.X, row.Y)
	}
}

// LoadLayout returns every placeable item ordered by id. The order is
// stable across calls so renderers draw deterministically.
func (r *SeatRepo) LoadLayout(ctx context.Context) ([]model.Item, error) {
	const q = `SELECT id, seat_number, seat_type, x_position, y_position, width, height
	           FROM seats
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var row seatRow
		if err := rows.Scan(&row.ID, &row.SeatNumber, &row.SeatType, &row.X, &row.Y, &row.W, &row.H); err != nil {
			return nil, err
		}
		items = append(items, decodeSeatRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns a single item by id, or ErrSeatNotFound.
func (r *SeatRepo) GetItem(ctx context.Context, id string) (*model.Item, error) {
	const q = `SELECT id, seat_number, seat_type, x_position, y_position, width, height
	           FROM seats WHERE id = ?`
	var row seatRow
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&row.ID, &row.SeatNumber, &row.SeatType, &row.X, &row.Y, &row.W, &row.H)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	it := decodeSeatRow(row)
	return &it, nil
}

// Count returns the number of persisted items, used to decide whether
// first-run seeding is needed.
func (r *SeatRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats`).Scan(&n)
	return n, err
}

// ReplaceLayout atomically swaps the entire layout: delete-all then
// insert-all inside one transaction, rolled back on any failure so the
// previous layout is left untouched. Concurrent readers never observe
// a half-replaced layout.
func (r *SeatRepo) ReplaceLayout(ctx context.Context, items []model.Item) error {
	// Encode everything up front: a malformed item must not cost a
	// transaction, and ids must be unique across all variants.
	encoded := make([]seatRow, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		row, err := encodeSeatRow(it)
		if err != nil {
			return err
		}
		if _, dup := seen[row.ID]; dup {
			return fmt.Errorf("duplicate item id %s", row.ID)
		}
		seen[row.ID] = struct{}{}
		encoded = append(encoded, row)
	}

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

	if _, err := tx.ExecContext(ctx, `DELETE FROM seats`); err != nil {
		return err
	}
	if len(encoded) > 0 {
		query := `INSERT INTO seats (id, seat_number, seat_type, x_position, y_position, width, height, is_available) VALUES `
		args := make([]interface{}, 0, len(encoded)*7)
		for i, row := range encoded {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, 1)"
			args = append(args, row.ID, row.SeatNumber, row.SeatType, row.X, row.Y, row.W, row.H)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
