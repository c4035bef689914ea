package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/layout"
	"seatplan/internal/model"
)

func TestGetSeatsFlattensItems(t *testing.T) {
	h := NewLayoutHandler(newFakeLayoutStore(
		model.NewDesk("1", 0, 0),
		model.NewMeetingRoom("M1", "Meeting Room 1", 7, 1, 2, 2),
		model.NewLabel("L1", "Kitchen", 6, 2),
	))

	rec, env := doJSON(t, h.GetSeats, http.MethodGet, "/v1/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	seats, ok := env["seats"].([]any)
	require.True(t, ok)
	require.Len(t, seats, 3)

	byID := map[string]map[string]any{}
	for _, s := range seats {
		row := s.(map[string]any)
		byID[row["id"].(string)] = row
	}

	desk := byID["1"]
	assert.Equal(t, "Desk 1", desk["seat_number"])
	assert.Equal(t, "desk", desk["seat_type"])
	assert.EqualValues(t, 1, desk["width"])
	assert.EqualValues(t, 1, desk["is_available"])

	// The room's metadata blob is decoded server side: the name lands
	// in seat_number and the size in width/height.
	room := byID["M1"]
	assert.Equal(t, "Meeting Room 1", room["seat_number"])
	assert.Equal(t, "meeting_room", room["seat_type"])
	assert.EqualValues(t, 7, room["x_position"])
	assert.EqualValues(t, 2, room["width"])
	assert.EqualValues(t, 2, room["height"])

	label := byID["L1"]
	assert.Equal(t, "Kitchen", label["seat_number"])
	assert.Equal(t, "label", label["seat_type"])
}

func TestUpdateLayoutReplacesWholePlan(t *testing.T) {
	store := newFakeLayoutStore(layout.Default()...)
	h := NewLayoutHandler(store)

	rec, env := doJSON(t, h.UpdateLayout, http.MethodPost, "/v1/layout", `{
		"seats": [{"id":"1","x_position":0,"y_position":0}],
		"meeting_rooms": [{"id":"M1","name":"War Room","x_position":7,"y_position":1,"width":3,"height":2}],
		"labels": [{"id":"L1","text":"Kitchen","x_position":6,"y_position":2}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Layout saved successfully", env["message"])

	require.Len(t, store.replaced, 3)
	items, err := store.LoadLayout(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	room, err := store.GetItem(context.Background(), "M1")
	require.NoError(t, err)
	require.NotNil(t, room.Room)
	assert.Equal(t, "War Room", room.Room.Name)
	assert.Equal(t, 3, room.Width())
}

func TestUpdateLayoutDefaultsRoomSize(t *testing.T) {
	store := newFakeLayoutStore()
	h := NewLayoutHandler(store)

	rec, _ := doJSON(t, h.UpdateLayout, http.MethodPost, "/v1/layout", `{
		"seats": [],
		"meeting_rooms": [{"id":"M1","name":"Huddle","x_position":0,"y_position":0}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	room, err := store.GetItem(context.Background(), "M1")
	require.NoError(t, err)
	assert.Equal(t, 2, room.Width())
	assert.Equal(t, 2, room.Height())
}

func TestUpdateLayoutRejectsMissingCollections(t *testing.T) {
	store := newFakeLayoutStore(layout.Default()...)
	h := NewLayoutHandler(store)

	for _, body := range []string{
		`{"meeting_rooms": []}`,
		`{"seats": []}`,
		`{}`,
	} {
		rec, env := doJSON(t, h.UpdateLayout, http.MethodPost, "/v1/layout", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid data", env["message"])
	}
	// The stored plan is untouched by rejected saves.
	items, err := store.LoadLayout(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, layout.DefaultDesks+2)
}

func TestUpdateLayoutSurfacesStoreError(t *testing.T) {
	store := newFakeLayoutStore()
	store.replaceErr = assert.AnError
	h := NewLayoutHandler(store)

	rec, env := doJSON(t, h.UpdateLayout, http.MethodPost, "/v1/layout",
		`{"seats": [], "meeting_rooms": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env["message"], "failed to save layout")
}

func TestResetLayout(t *testing.T) {
	store := newFakeLayoutStore(model.NewDesk("1", 0, 0))
	h := NewLayoutHandler(store)

	rec, env := doJSON(t, h.ResetLayout, http.MethodPost, "/v1/layout/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Layout reset to default", env["message"])

	items, err := store.LoadLayout(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, layout.DefaultDesks+2)
}
