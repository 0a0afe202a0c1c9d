package create_booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/booking"
	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
	"github.com/m04kA/GHM-BookingService/internal/infra/storage/schema"
	"github.com/m04kA/GHM-BookingService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func newTestUseCase(t *testing.T) (*UseCase, *guesthouseRepo.Repository, *bookingRepo.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, schema.Apply(context.Background(), db))

	houses := guesthouseRepo.NewRepository(db)
	bookings := bookingRepo.NewRepository(db)
	uc := NewUseCase(bookings, houses, txmanager.New(db), nopLogger{})
	return uc, houses, bookings
}

func validRequest(t *testing.T) *Request {
	return &Request{
		GuestName:      "Anil Kumar",
		GuestContact:   "9812345670",
		EmployeeID:     "E-1042",
		Department:     "Finance",
		Purpose:        "Official visit",
		CheckIn:        date(t, "2025-10-10"),
		CheckOut:       date(t, "2025-10-15"),
		GuestHouseName: "Ambav Garh",
		RoomNumber:     "101",
	}
}

func TestUseCase_Execute_CreatesBooking(t *testing.T) {
	uc, houses, bookings := newTestUseCase(t)
	_, err := houses.Create(context.Background(), &domain.GuestHouse{
		Name:   "Ambav Garh",
		Mobile: "9876543210",
		Rooms:  domain.SyncRooms(5, nil),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Anil Kumar", resp.GuestName)
	assert.Equal(t, 5, resp.Nights)
	assert.Empty(t, resp.CapacityWarning)

	stored, err := bookings.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ambav Garh", stored.GuestHouseName)
}

func TestUseCase_Execute_FullHouseStillCreates(t *testing.T) {
	uc, houses, bookings := newTestUseCase(t)
	_, err := houses.Create(context.Background(), &domain.GuestHouse{
		Name:   "HDM Guest House",
		Mobile: "9876543210",
		Rooms:  domain.SyncRooms(1, nil),
	})
	require.NoError(t, err)

	first, err := uc.Execute(context.Background(), validRequestFor(t, "HDM Guest House"))
	require.NoError(t, err)
	assert.Empty(t, first.CapacityWarning)

	// Дом уже полон, но бронирование все равно создается
	second, err := uc.Execute(context.Background(), validRequestFor(t, "HDM Guest House"))
	require.NoError(t, err)
	assert.NotEmpty(t, second.CapacityWarning)

	all, err := bookings.ListByGuestHouse(context.Background(), "HDM Guest House")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func validRequestFor(t *testing.T, house string) *Request {
	req := validRequest(t)
	req.GuestHouseName = house
	return req
}

func TestUseCase_Execute_UnknownHouseStillCreates(t *testing.T) {
	uc, _, bookings := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequestFor(t, "Ghost House"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CapacityWarning)

	stored, err := bookings.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ghost House", stored.GuestHouseName)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	noGuest := validRequest(t)
	noGuest.GuestName = "  "
	_, err := uc.Execute(ctx, noGuest)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noHouse := validRequest(t)
	noHouse.GuestHouseName = ""
	_, err = uc.Execute(ctx, noHouse)
	assert.ErrorIs(t, err, ErrInvalidInput)

	inverted := validRequest(t)
	inverted.CheckIn = date(t, "2025-10-15")
	inverted.CheckOut = date(t, "2025-10-10")
	_, err = uc.Execute(ctx, inverted)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUseCase_Execute_SameDayStayAllowed(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest(t)
	req.CheckOut = req.CheckIn
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Nights)
}
