package check_availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/booking"
	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
	"github.com/m04kA/GHM-BookingService/internal/infra/storage/schema"
	checkAvailability "github.com/m04kA/GHM-BookingService/internal/usecase/check_availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, schema.Apply(context.Background(), db))

	houses := guesthouseRepo.NewRepository(db)
	bookings := bookingRepo.NewRepository(db)

	_, err = houses.Create(context.Background(), &domain.GuestHouse{
		Name:   "Ambav Garh",
		Mobile: "9876543210",
		Rooms:  domain.SyncRooms(5, nil),
	})
	require.NoError(t, err)

	checkIn, err := time.Parse(domain.DateFormat, "2025-10-12")
	require.NoError(t, err)
	_, err = bookings.Create(context.Background(), &domain.Booking{
		GuestName:      "Anil Kumar",
		GuestHouseName: "Ambav Garh",
		CheckIn:        checkIn,
		CheckOut:       checkIn.AddDate(0, 0, 8),
	})
	require.NoError(t, err)

	uc := checkAvailability.NewUseCase(houses, bookings, nopLogger{})
	return NewHandler(uc, nopLogger{})
}

func TestHandler_OK(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?guestHouse=Ambav+Garh&checkIn=2025-10-10&checkOut=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp checkAvailability.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalRooms)
	assert.Equal(t, 1, resp.Booked)
	assert.Equal(t, 4, resp.Available)
	assert.True(t, resp.Sufficient)
}

func TestHandler_BadDates(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?guestHouse=Ambav+Garh&checkIn=10.10.2025&checkOut=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvertedRange(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?guestHouse=Ambav+Garh&checkIn=2025-10-15&checkOut=2025-10-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MissingHouse(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?checkIn=2025-10-10&checkOut=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
