// Package editor implements the interactive floor-plan editor: an
// in-memory working copy of the layout, mutated in pixel space with
// grid snapping, then bulk-converted back to grid units and saved
// through the layout store in one replace.
package editor

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"seatplan/internal/layout"
	"seatplan/internal/model"
)

// Room size limits in grid units.
const (
	MinRoomUnits = 1
	MaxRoomUnits = 10
)

// Default pixel positions for newly added items, chosen to land inside
// the visible canvas.
const (
	newDeskX, newDeskY   = 200, 200
	newRoomX, newRoomY   = 100, 100
	newLabelX, newLabelY = 300, 100
)

// Validation errors returned by the add operations. A failed add has
// no partial effect on the working copy.
var (
	ErrNameRequired   = errors.New("name is required")
	ErrTextRequired   = errors.New("text is required")
	ErrSizeOutOfRange = errors.New("room size must be between 1 and 10 grid units")
)

// Store is the slice of the layout store the editor needs. It is
// satisfied by repository.SeatRepo.
type Store interface {
	LoadLayout(ctx context.Context) ([]model.Item, error)
	ReplaceLayout(ctx context.Context, items []model.Item) error
}

// IDPolicy selects how desk ids behave after a delete. The two
// policies must never be mixed: switching mid-session reassigns ids
// users already know.
type IDPolicy int

const (
	// IDStable keeps surviving desk numbers untouched; new desks get
	// max existing number + 1, so deletions never cause id reuse.
	IDStable IDPolicy = iota
	// IDRenumber reassigns all desk numbers sequentially by position
	// (top-left to bottom-right) after every delete.
	IDRenumber
)

// Desk is a working-copy desk positioned in pixels. New marks desks
// added since the last save for UI highlighting only; it is never
// persisted.
type Desk struct {
	ID   string
	X, Y int
	New  bool
}

// Room is a working-copy meeting room. Position and size are pixels
// at the shared layout scale.
type Room struct {
	ID     string
	Name   string
	X, Y   int
	Width  int
	Height int
}

// Label is a working-copy area label positioned in pixels.
type Label struct {
	ID   string
	Text string
	X, Y int
}

// Editor holds the uncommitted working copy. It is independent from
// the persisted layout until Save; a failed Save leaves the working
// copy intact so the user can retry.
type Editor struct {
	store  Store
	policy IDPolicy

	desks  []Desk
	rooms  []Room
	labels []Label
	dirty  bool
}

// New returns an editor bound to the given store.
func New(store Store, policy IDPolicy) *Editor {
	return &Editor{store: store, policy: policy}
}

// Load replaces the working copy with the persisted layout, converting
// grid units to pixels at the shared scale.
func (e *Editor) Load(ctx context.Context) error {
	items, err := e.store.LoadLayout(ctx)
	if err != nil {
		return err
	}
	e.setFromItems(items)
	return nil
}

func (e *Editor) setFromItems(items []model.Item) {
	e.desks = e.desks[:0]
	e.rooms = e.rooms[:0]
	e.labels = e.labels[:0]
	for _, it := range items {
		x, y := layout.ToPixel(it.X), layout.ToPixel(it.Y)
		switch it.Kind {
		case model.KindMeetingRoom:
			e.rooms = append(e.rooms, Room{
				ID:     it.ID,
				Name:   it.DisplayName(),
				X:      x,
				Y:      y,
				Width:  layout.ToPixel(it.Width()),
				Height: layout.ToPixel(it.Height()),
			})
		case model.KindLabel:
			e.labels = append(e.labels, Label{ID: it.ID, Text: it.DisplayName(), X: x, Y: y})
		default:
			e.desks = append(e.desks, Desk{ID: it.ID, X: x, Y: y})
		}
	}
	e.dirty = false
}

// Desks returns a copy of the working-copy desks.
func (e *Editor) Desks() []Desk { return append([]Desk(nil), e.desks...) }

// Rooms returns a copy of the working-copy meeting rooms.
func (e *Editor) Rooms() []Room { return append([]Room(nil), e.rooms...) }

// Labels returns a copy of the working-copy labels.
func (e *Editor) Labels() []Label { return append([]Label(nil), e.labels...) }

// Dirty reports whether the working copy has unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// AddDesk allocates the next unused desk number (max existing + 1,
// not a count, so deletions don't create collisions) and places the
// desk at the default position, marked new for highlighting.
func (e *Editor) AddDesk() Desk {
	max := 0
	for _, d := range e.desks {
		if n, ok := model.DeskNumber(d.ID); ok && n > max {
			max = n
		}
	}
	d := Desk{ID: strconv.Itoa(max + 1), X: newDeskX, Y: newDeskY, New: true}
	e.desks = append(e.desks, d)
	e.dirty = true
	return d
}

// AddMeetingRoom allocates the next "M"+n id and adds a room of the
// given size in grid units. The name must be non-empty and both
// dimensions must lie in [MinRoomUnits, MaxRoomUnits]; on validation
// failure nothing is added.
func (e *Editor) AddMeetingRoom(name string, widthUnits, heightUnits int) (Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Room{}, ErrNameRequired
	}
	if widthUnits < MinRoomUnits || widthUnits > MaxRoomUnits ||
		heightUnits < MinRoomUnits || heightUnits > MaxRoomUnits {
		return Room{}, ErrSizeOutOfRange
	}
	r := Room{
		ID:   nextPrefixedID("M", roomIDs(e.rooms)),
		Name: name,
		X:    newRoomX,
		Y:    newRoomY,
		// Size uses the shared cell scale, not the snap resolution:
		// a 2-unit room must round-trip to 2 units at save time.
		Width:  layout.ToPixel(widthUnits),
		Height: layout.ToPixel(heightUnits),
	}
	e.rooms = append(e.rooms, r)
	e.dirty = true
	return r, nil
}

// AddLabel allocates the next "L"+n id and adds an area label.
func (e *Editor) AddLabel(text string) (Label, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Label{}, ErrTextRequired
	}
	l := Label{ID: nextPrefixedID("L", labelIDs(e.labels)), Text: text, X: newLabelX, Y: newLabelY}
	e.labels = append(e.labels, l)
	e.dirty = true
	return l, nil
}

// MoveItem snaps the pixel position to the editor's snap resolution
// and updates the item in the working copy only. It reports whether an
// item with the given id exists.
func (e *Editor) MoveItem(id string, pixelX, pixelY int) bool {
	x, y := layout.Snap(pixelX), layout.Snap(pixelY)
	for i := range e.desks {
		if e.desks[i].ID == id {
			e.desks[i].X, e.desks[i].Y = x, y
			e.dirty = true
			return true
		}
	}
	for i := range e.rooms {
		if e.rooms[i].ID == id {
			e.rooms[i].X, e.rooms[i].Y = x, y
			e.dirty = true
			return true
		}
	}
	for i := range e.labels {
		if e.labels[i].ID == id {
			e.labels[i].X, e.labels[i].Y = x, y
			e.dirty = true
			return true
		}
	}
	return false
}

// DeleteItem removes the item from the working copy. Under IDStable
// surviving desk numbers are untouched; under IDRenumber all desks are
// renumbered by position after the delete.
func (e *Editor) DeleteItem(id string) bool {
	for i := range e.desks {
		if e.desks[i].ID == id {
			e.desks = append(e.desks[:i], e.desks[i+1:]...)
			if e.policy == IDRenumber {
				e.renumberDesks()
			}
			e.dirty = true
			return true
		}
	}
	for i := range e.rooms {
		if e.rooms[i].ID == id {
			e.rooms = append(e.rooms[:i], e.rooms[i+1:]...)
			e.dirty = true
			return true
		}
	}
	for i := range e.labels {
		if e.labels[i].ID == id {
			e.labels = append(e.labels[:i], e.labels[i+1:]...)
			e.dirty = true
			return true
		}
	}
	return false
}

// renumberDesks reassigns desk numbers 1..n by visual position, left
// to right within a row, rows top to bottom. Desks whose vertical
// distance is under one snap step count as the same row.
func (e *Editor) renumberDesks() {
	sort.SliceStable(e.desks, func(i, j int) bool {
		a, b := e.desks[i], e.desks[j]
		dy := a.Y - b.Y
		if dy < 0 {
			dy = -dy
		}
		if dy < layout.SnapPixels {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := range e.desks {
		e.desks[i].ID = strconv.Itoa(i + 1)
	}
}

// Items converts the working copy back to grid units at the shared
// scale, in the form the layout store persists.
func (e *Editor) Items() []model.Item {
	items := make([]model.Item, 0, len(e.desks)+len(e.rooms)+len(e.labels))
	for _, d := range e.desks {
		items = append(items, model.NewDesk(d.ID, layout.ToGrid(d.X), layout.ToGrid(d.Y)))
	}
	for _, r := range e.rooms {
		items = append(items, model.NewMeetingRoom(r.ID, r.Name,
			layout.ToGrid(r.X), layout.ToGrid(r.Y),
			layout.ToGrid(r.Width), layout.ToGrid(r.Height)))
	}
	for _, l := range e.labels {
		items = append(items, model.NewLabel(l.ID, l.Text, layout.ToGrid(l.X), layout.ToGrid(l.Y)))
	}
	return items
}

// Save converts the working copy to grid units and replaces the
// persisted layout. On success the unsaved state is cleared and new
// markers reset; on failure the working copy is left intact for retry.
func (e *Editor) Save(ctx context.Context) error {
	if err := e.store.ReplaceLayout(ctx, e.Items()); err != nil {
		return err
	}
	for i := range e.desks {
		e.desks[i].New = false
	}
	e.dirty = false
	return nil
}

// ResetToDefault discards all customization and reseeds the canonical
// layout through the same transactional replace as the store seed.
func (e *Editor) ResetToDefault(ctx context.Context) error {
	def := layout.Default()
	if err := e.store.ReplaceLayout(ctx, def); err != nil {
		return err
	}
	e.setFromItems(def)
	return nil
}

func roomIDs(rooms []Room) []string {
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

func labelIDs(labels []Label) []string {
	ids := make([]string, len(labels))
	for i, l := range labels {
		ids[i] = l.ID
	}
	return ids
}

// nextPrefixedID returns prefix + (max existing number + 1) over ids
// that carry the prefix.
func nextPrefixedID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if n, err := strconv.Atoi(id[len(prefix):]); err == nil && n > max {
			max = n
		}
	}
	return prefix + strconv.Itoa(max+1)
}
