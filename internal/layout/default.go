package layout

import (
	"strconv"

	"seatplan/internal/model"
)

// Default layout dimensions: 42 desks in a 7-row by 6-column grid,
// plus two 2x2 meeting rooms to the right of the desks.
const (
	defaultDeskRows = 7
	defaultDeskCols = 6
	DefaultDesks    = defaultDeskRows * defaultDeskCols
)

// Default returns the canonical floor plan used for first-run seeding
// and for "reset to default": desks 1..42 laid out row-major in a 7x6
// grid, and meeting rooms M1 and M2 at column 7.
func Default() []model.Item {
	items := make([]model.Item, 0, DefaultDesks+2)
	for i := 1; i <= DefaultDesks; i++ {
		row := (i - 1) / defaultDeskCols
		col := (i - 1) % defaultDeskCols
		items = append(items, model.NewDesk(strconv.Itoa(i), col, row))
	}
	items = append(items,
		model.NewMeetingRoom("M1", "Meeting Room 1", 7, 1, 2, 2),
		model.NewMeetingRoom("M2", "Meeting Room 2", 7, 4, 2, 2),
	)
	return items
}
