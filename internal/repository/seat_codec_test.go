package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/model"
)

func TestEncodeSeatRowDesk(t *testing.T) {
	row, err := encodeSeatRow(model.NewDesk("17", 4, 2))
	require.NoError(t, err)
	assert.Equal(t, seatRow{ID: "17", SeatNumber: "Desk 17", SeatType: "desk", X: 4, Y: 2, W: 1, H: 1}, row)
}

func TestEncodeSeatRowRoomPacksBlob(t *testing.T) {
	row, err := encodeSeatRow(model.NewMeetingRoom("M3", "Sales", 7, 1, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, "meeting_room", row.SeatType)
	assert.Equal(t, 3, row.W)
	assert.Equal(t, 2, row.H)
	assert.JSONEq(t, `{"name":"Sales","width":3,"height":2}`, row.SeatNumber)
}

func TestEncodeSeatRowLabel(t *testing.T) {
	row, err := encodeSeatRow(model.NewLabel("L1", "Engineering", 0, 8))
	require.NoError(t, err)
	assert.Equal(t, "label", row.SeatType)
	assert.Equal(t, "Engineering", row.SeatNumber)
	assert.Equal(t, 1, row.W)
}

func TestEncodeSeatRowMalformed(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
	}{
		{"missing id", model.Item{Kind: model.KindDesk}},
		{"negative position", model.NewDesk("1", -1, 0)},
		{"room without payload", model.Item{ID: "M1", Kind: model.KindMeetingRoom}},
		{"room with empty name", model.NewMeetingRoom("M1", "", 0, 0, 2, 2)},
		{"room with zero width", model.NewMeetingRoom("M1", "X", 0, 0, 0, 2)},
		{"label without text", model.Item{ID: "L1", Kind: model.KindLabel, Label: &model.LabelInfo{}}},
		{"unknown kind", model.Item{ID: "z", Kind: model.Kind("ghost")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeSeatRow(tt.item)
			assert.Error(t, err)
		})
	}
}

func TestDecodeSeatRowRoundTrip(t *testing.T) {
	items := []model.Item{
		model.NewDesk("1", 0, 0),
		model.NewMeetingRoom("M2", "Meeting Room 2", 7, 4, 2, 2),
		model.NewLabel("L3", "Reception", 2, 9),
	}
	for _, it := range items {
		row, err := encodeSeatRow(it)
		require.NoError(t, err)
		assert.Equal(t, it, decodeSeatRow(row))
	}
}

func TestDecodeSeatRowDegradedRoomBlob(t *testing.T) {
	// A room whose blob fails to parse still renders: name falls back
	// and size comes from the width/height columns.
	row := seatRow{ID: "M9", SeatNumber: "not-json", SeatType: "meeting_room", X: 1, Y: 1, W: 3, H: 2}
	it := decodeSeatRow(row)
	require.NotNil(t, it.Room)
	assert.Equal(t, "Meeting Room", it.Room.Name)
	assert.Equal(t, 3, it.Width())
	assert.Equal(t, 2, it.Height())

	// Zero-size columns fall back to the historical 2x2 default.
	row.W, row.H = 0, 0
	it = decodeSeatRow(row)
	assert.Equal(t, 2, it.Width())
	assert.Equal(t, 2, it.Height())
}
