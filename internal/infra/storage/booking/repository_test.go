package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	"github.com/m04kA/GHM-BookingService/internal/infra/storage/schema"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db))
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func testBooking(t *testing.T, guest, house, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		GuestName:      guest,
		GuestContact:   "9812345670",
		EmployeeID:     "E-1042",
		Department:     "Finance",
		Purpose:        "Official visit",
		ModeOfTravel:   "Train",
		CheckIn:        date(t, checkIn),
		CheckOut:       date(t, checkOut),
		GuestHouseName: house,
		RoomNumber:     "101",
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testBooking(t, "Anil Kumar", "Ambav Garh", "2025-10-10", "2025-10-15"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anil Kumar", got.GuestName)
	assert.Equal(t, "Ambav Garh", got.GuestHouseName)
	assert.Equal(t, date(t, "2025-10-10"), got.CheckIn)
	assert.Equal(t, date(t, "2025-10-15"), got.CheckOut)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Update_KeepsID(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testBooking(t, "Anil Kumar", "Ambav Garh", "2025-10-10", "2025-10-15"))
	require.NoError(t, err)

	replacement := testBooking(t, "Sunita Sharma", "HDM Guest House", "2025-11-01", "2025-11-03")
	require.NoError(t, repo.Update(ctx, created.ID, replacement))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Sunita Sharma", got.GuestName)
	assert.Equal(t, "HDM Guest House", got.GuestHouseName)
	assert.Equal(t, date(t, "2025-11-01"), got.CheckIn)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	err := repo.Update(context.Background(), 999, testBooking(t, "Nobody", "Nowhere", "2025-10-10", "2025-10-11"))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testBooking(t, "Anil Kumar", "Ambav Garh", "2025-10-10", "2025-10-15"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_OrderAndFilter(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testBooking(t, "Anil Kumar", "Ambav Garh", "2025-10-10", "2025-10-15"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking(t, "Sunita Sharma", "HDM Guest House", "2025-10-12", "2025-10-14"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking(t, "Vikram Singh", "Ambav Garh", "2025-11-01", "2025-11-05"))
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Anil Kumar", all[0].GuestName)
	assert.Equal(t, "Sunita Sharma", all[1].GuestName)
	assert.Equal(t, "Vikram Singh", all[2].GuestName)

	// Фильтр по имени гостя без учета регистра
	byGuest, err := repo.List(ctx, "SUNITA")
	require.NoError(t, err)
	require.Len(t, byGuest, 1)
	assert.Equal(t, "Sunita Sharma", byGuest[0].GuestName)

	// Фильтр по названию гостевого дома
	byHouse, err := repo.List(ctx, "ambav")
	require.NoError(t, err)
	assert.Len(t, byHouse, 2)
}

func TestRepository_ListByGuestHouse(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testBooking(t, "Anil Kumar", "Ambav Garh", "2025-10-10", "2025-10-15"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking(t, "Sunita Sharma", "HDM Guest House", "2025-10-12", "2025-10-14"))
	require.NoError(t, err)

	got, err := repo.ListByGuestHouse(ctx, "Ambav Garh")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Anil Kumar", got[0].GuestName)

	// Точное совпадение имени, без подстрок
	none, err := repo.ListByGuestHouse(ctx, "Ambav")
	require.NoError(t, err)
	assert.Empty(t, none)
}
