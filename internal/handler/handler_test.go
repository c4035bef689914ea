package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"seatplan/internal/model"
	"seatplan/internal/repository"
)

// fakeLayoutStore is an in-memory layout store keyed by item id.
type fakeLayoutStore struct {
	items      map[string]model.Item
	replaceErr error
	replaced   []model.Item
}

func newFakeLayoutStore(items ...model.Item) *fakeLayoutStore {
	m := make(map[string]model.Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakeLayoutStore{items: m}
}

func (f *fakeLayoutStore) LoadLayout(context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLayoutStore) ReplaceLayout(_ context.Context, items []model.Item) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append([]model.Item(nil), items...)
	m := make(map[string]model.Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	f.items = m
	return nil
}

func (f *fakeLayoutStore) GetItem(_ context.Context, id string) (*model.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	return &it, nil
}

// fakeBookingStore mirrors the ledger's uniqueness rule on the
// (seat, date) pair.
type fakeBookingStore struct {
	bookings map[string]model.Booking
	nextID   uint64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[string]model.Booking{}}
}

func ledgerKey(seatID, date string) string { return seatID + "|" + date }

func (f *fakeBookingStore) ListByDate(_ context.Context, date string) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })
	return out, nil
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	k := ledgerKey(b.SeatID, b.Date)
	if _, ok := f.bookings[k]; ok {
		return repository.ErrBookingExists
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings[k] = *b
	return nil
}

func (f *fakeBookingStore) Cancel(_ context.Context, seatID, date string) error {
	k := ledgerKey(seatID, date)
	if _, ok := f.bookings[k]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(f.bookings, k)
	return nil
}

// doJSON runs a handler against a synthetic request and returns the
// recorder plus the decoded response envelope.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}
