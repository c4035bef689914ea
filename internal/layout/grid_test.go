package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGridToPixelRoundTrip(t *testing.T) {
	// Round-trip law: ToGrid(ToPixel(g)) == g for every grid coordinate.
	for g := 0; g <= 200; g++ {
		if got := ToGrid(ToPixel(g)); got != g {
			t.Fatalf("ToGrid(ToPixel(%d)) = %d, want %d", g, got, g)
		}
	}
}

func TestToGridRoundsToNearestCell(t *testing.T) {
	tests := []struct {
		name string
		px   int
		want int
	}{
		{"origin", 0, 0},
		{"just below half cell", 24, 0},
		{"half cell rounds up", 25, 1},
		{"one cell", 50, 1},
		{"snap position between cells", 75, 2},
		{"negative clamps to zero", -30, 0},
		{"large", 1000, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGrid(tt.px))
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		px   int
		want int
	}{
		{0, 0},
		{12, 25},
		{11, 0},
		{13, 25},
		{25, 25},
		{37, 25},
		{38, 50},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Snap(tt.px), "Snap(%d)", tt.px)
	}
}

func TestSnapIsFinerThanCell(t *testing.T) {
	// The drag snap must divide the persisted cell size; otherwise a
	// snapped position could quantize to a different cell than the one
	// the user dropped the item on.
	assert.Zero(t, CellPixels%SnapPixels)
}
