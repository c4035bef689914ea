package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/model"
)

func TestApplyCreateAndCancel(t *testing.T) {
	m := New("2024-06-01")

	b := model.Booking{SeatID: "5", Date: "2024-06-01", UserID: 2, UserName: "Jane Smith"}
	assert.Equal(t, OutcomeOK, m.ApplyCreate(b))

	got, ok := m.Booked("5")
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", got.UserName)

	// Second create for the same seat and date conflicts and leaves
	// the mirror unchanged.
	dup := model.Booking{SeatID: "5", Date: "2024-06-01", UserID: 3, UserName: "Bob Johnson"}
	assert.Equal(t, OutcomeConflict, m.ApplyCreate(dup))
	require.Len(t, m.Bookings(), 1)
	assert.Equal(t, "Jane Smith", m.Bookings()[0].UserName)

	// Cancel makes the seat available again.
	assert.Equal(t, OutcomeOK, m.ApplyCancel("5"))
	assert.Empty(t, m.Bookings())
	_, ok = m.Booked("5")
	assert.False(t, ok)

	// Cancel of a nonexistent booking reports not found.
	assert.Equal(t, OutcomeNotFound, m.ApplyCancel("5"))
}

func TestApplyCreateRejectsOtherDate(t *testing.T) {
	m := New("2024-06-01")
	out := m.ApplyCreate(model.Booking{SeatID: "7", Date: "2024-06-02"})
	assert.Equal(t, OutcomeNotFound, out)
	assert.Empty(t, m.Bookings())
}

func TestLoadDiscardsOptimisticState(t *testing.T) {
	m := New("2024-06-01")
	m.ApplyCreate(model.Booking{SeatID: "5", Date: "2024-06-01"})

	fresh := []model.Booking{{SeatID: "9", Date: "2024-06-02", UserName: "Alice Williams"}}
	m.Load("2024-06-02", fresh)

	assert.Equal(t, "2024-06-02", m.Date())
	require.Len(t, m.Bookings(), 1)
	assert.Equal(t, "9", m.Bookings()[0].SeatID)
	_, ok := m.Booked("5")
	assert.False(t, ok)
}

func TestBookingsReturnsCopy(t *testing.T) {
	m := New("2024-06-01")
	m.ApplyCreate(model.Booking{SeatID: "5", Date: "2024-06-01"})

	got := m.Bookings()
	got[0].SeatID = "mutated"

	fresh, ok := m.Booked("5")
	require.True(t, ok)
	assert.Equal(t, "5", fresh.SeatID)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", OutcomeOK.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "not found", OutcomeNotFound.String())
	assert.Equal(t, "network error", OutcomeNetworkError.String())
}
