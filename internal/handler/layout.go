package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seatplan/internal/layout"
	"seatplan/internal/model"
)

// LayoutHandler serves the floor plan and applies full-layout
// replacements. Items are never individually patched: the editor sends
// its whole working copy and the store swaps it atomically.
type LayoutHandler struct {
	Seats LayoutStore
}

// NewLayoutHandler constructs a LayoutHandler.
func NewLayoutHandler(seats LayoutStore) *LayoutHandler {
	if seats == nil {
		panic("nil store passed to NewLayoutHandler")
	}
	return &LayoutHandler{Seats: seats}
}

// seatDTO is the flattened wire form of a placeable item. Meeting
// rooms arrive with the metadata blob already decoded: seat_number
// carries the room name and width/height the room size, so renderers
// need no knowledge of the storage packing.
type seatDTO struct {
	ID          string `json:"id"`
	SeatNumber  string `json:"seat_number"`
	SeatType    string `json:"seat_type"`
	XPosition   int    `json:"x_position"`
	YPosition   int    `json:"y_position"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	IsAvailable int    `json:"is_available"`
}

func toSeatDTO(it model.Item) seatDTO {
	return seatDTO{
		ID:          it.ID,
		SeatNumber:  it.DisplayName(),
		SeatType:    string(it.Kind),
		XPosition:   it.X,
		YPosition:   it.Y,
		Width:       it.Width(),
		Height:      it.Height(),
		IsAvailable: 1,
	}
}

// GetSeats handles GET /v1/seats. It returns every placeable item in
// stable id order.
func (h *LayoutHandler) GetSeats(c echo.Context) error {
	items, err := h.Seats.LoadLayout(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load layout")
	}
	seats := make([]seatDTO, 0, len(items))
	for _, it := range items {
		seats = append(seats, toSeatDTO(it))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "seats": seats})
}

// layoutRequest is the editor's save payload: the complete working
// copy, already converted to grid units.
type layoutRequest struct {
	Seats []struct {
		ID        string `json:"id"`
		XPosition int    `json:"x_position"`
		YPosition int    `json:"y_position"`
	} `json:"seats"`
	MeetingRooms []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		XPosition int    `json:"x_position"`
		YPosition int    `json:"y_position"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"meeting_rooms"`
	Labels []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		XPosition int    `json:"x_position"`
		YPosition int    `json:"y_position"`
	} `json:"labels"`
}

// UpdateLayout handles POST /v1/layout. The replace is all-or-nothing:
// on any failure the previous layout is untouched and the editor keeps
// its working copy for retry.
func (h *LayoutHandler) UpdateLayout(c echo.Context) error {
	var req layoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Seats == nil || req.MeetingRooms == nil {
		return fail(c, http.StatusBadRequest, "invalid data")
	}

	items := make([]model.Item, 0, len(req.Seats)+len(req.MeetingRooms)+len(req.Labels))
	for _, s := range req.Seats {
		items = append(items, model.NewDesk(s.ID, s.XPosition, s.YPosition))
	}
	for _, r := range req.MeetingRooms {
		w, ht := r.Width, r.Height
		if w < 1 {
			w = 2
		}
		if ht < 1 {
			ht = 2
		}
		items = append(items, model.NewMeetingRoom(r.ID, r.Name, r.XPosition, r.YPosition, w, ht))
	}
	for _, l := range req.Labels {
		items = append(items, model.NewLabel(l.ID, l.Text, l.XPosition, l.YPosition))
	}

	if err := h.Seats.ReplaceLayout(c.Request().Context(), items); err != nil {
		return fail(c, http.StatusBadRequest, "failed to save layout: "+err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Layout saved successfully"})
}

// ResetLayout handles POST /v1/layout/reset. It reseeds the canonical
// default floor plan through the same transactional replace.
func (h *LayoutHandler) ResetLayout(c echo.Context) error {
	if err := h.Seats.ReplaceLayout(c.Request().Context(), layout.Default()); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to reset layout")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Layout reset to default"})
}
