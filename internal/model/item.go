package model

import "strconv"

// Kind discriminates the three placeable item variants stored in the
// `seats` table. The table keeps one narrow schema for all variants;
// the Kind column (`seat_type`) tells readers how to interpret the
// per-variant payload.
type Kind string

const (
	KindDesk        Kind = "desk"
	KindMeetingRoom Kind = "meeting_room"
	KindLabel       Kind = "label"
)

// RoomInfo is the meeting-room payload. Name, Width and Height travel
// inside a JSON blob in the item's display column (`seat_number`) so
// the store needs no room-specific columns beyond position/size.
//
// Fields:
//  Name   – human-readable room name shown on the floor plan.
//  Width  – room width in grid units (>= 1).
//  Height – room height in grid units (>= 1).
type RoomInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LabelInfo is the payload of a decorative area label. Labels are
// never bookable.
type LabelInfo struct {
	Text string // text rendered on the floor plan
}

// Item is one placeable element of the floor plan: a desk, a meeting
// room or an area label. Exactly one of Room/Label is non-nil,
// matching Kind; a desk carries no extra payload. X and Y are grid
// units (non-negative integers), independent of any pixel scale.
//
// Identifier conventions: desk ids are numeric strings ("1", "42"),
// room ids are "M"+number, label ids are "L"+number. Ids are unique
// across all items. The model enforces no overlap constraint; rooms
// may visually abut desks.
type Item struct {
	ID    string     // seats.id
	Kind  Kind       // seats.seat_type
	X     int        // seats.x_position (grid units)
	Y     int        // seats.y_position (grid units)
	Room  *RoomInfo  // only when Kind == KindMeetingRoom
	Label *LabelInfo // only when Kind == KindLabel
}

// NewDesk returns a 1x1 desk item at the given grid position.
func NewDesk(id string, x, y int) Item {
	return Item{ID: id, Kind: KindDesk, X: x, Y: y}
}

// NewMeetingRoom returns a meeting-room item with the given name and
// size in grid units.
func NewMeetingRoom(id, name string, x, y, width, height int) Item {
	return Item{
		ID:   id,
		Kind: KindMeetingRoom,
		X:    x,
		Y:    y,
		Room: &RoomInfo{Name: name, Width: width, Height: height},
	}
}

// NewLabel returns an area-label item.
func NewLabel(id, text string, x, y int) Item {
	return Item{ID: id, Kind: KindLabel, X: x, Y: y, Label: &LabelInfo{Text: text}}
}

// Bookable reports whether the item is a place that can hold a
// booking. Desks and meeting rooms are places; labels are decoration.
func (i Item) Bookable() bool {
	return i.Kind == KindDesk || i.Kind == KindMeetingRoom
}

// Width returns the item's width in grid units (1 except for rooms).
func (i Item) Width() int {
	if i.Kind == KindMeetingRoom && i.Room != nil && i.Room.Width > 0 {
		return i.Room.Width
	}
	return 1
}

// Height returns the item's height in grid units (1 except for rooms).
func (i Item) Height() int {
	if i.Kind == KindMeetingRoom && i.Room != nil && i.Room.Height > 0 {
		return i.Room.Height
	}
	return 1
}

// DisplayName returns the text shown for the item on the floor plan:
// "Desk N" for desks, the room name for rooms, the label text for
// labels.
func (i Item) DisplayName() string {
	switch i.Kind {
	case KindMeetingRoom:
		if i.Room != nil {
			return i.Room.Name
		}
		return "Meeting Room"
	case KindLabel:
		if i.Label != nil {
			return i.Label.Text
		}
		return ""
	default:
		return "Desk " + i.ID
	}
}

// DeskNumber parses a desk id into its number. It returns 0, false
// for non-numeric ids (rooms, labels).
func DeskNumber(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
