package guesthouse

import (
	"context"
	"database/sql"
	"testing"

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

func testHouse(name string, rooms int) *domain.GuestHouse {
	return &domain.GuestHouse{
		Name:       name,
		Address:    "Udaipur",
		Caretaker:  "Ramesh",
		Mobile:     "9876543210",
		Facilities: []string{"Wi-Fi", "AC"},
		Rooms:      domain.SyncRooms(rooms, nil),
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testHouse("Ambav Garh", 5))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ambav Garh", got.Name)
	assert.Equal(t, []string{"Wi-Fi", "AC"}, got.Facilities)
	assert.Equal(t, 5, got.Capacity())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrGuestHouseNotFound)
}

func TestRepository_DuplicateNamesAllowed(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, testHouse("HDM Guest House", 2))
	require.NoError(t, err)
	second, err := repo.Create(ctx, testHouse("HDM Guest House", 3))
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// GetByName отдает самую раннюю запись с этим именем
	got, err := repo.GetByName(ctx, "HDM Guest House")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 2, got.Capacity())
}

func TestRepository_Update_ReplacesRooms(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testHouse("Demo Guest House 1", 5))
	require.NoError(t, err)

	updated := testHouse("Demo Guest House 1", 0)
	updated.Rooms = []domain.Room{
		{RoomNumber: "101", Occupancy: "Double"},
		{RoomNumber: "102", Occupancy: "Single"},
	}
	updated.Caretaker = "Suresh"

	require.NoError(t, repo.Update(ctx, created.ID, updated))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Suresh", got.Caretaker)
	require.Equal(t, 2, got.Capacity())
	assert.Equal(t, "101", got.Rooms[0].RoomNumber)
	assert.Equal(t, "102", got.Rooms[1].RoomNumber)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	err := repo.Update(context.Background(), 999, testHouse("Nowhere", 1))
	assert.ErrorIs(t, err, ErrGuestHouseNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testHouse("Ambav Garh", 5))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrGuestHouseNotFound)

	// Повторное удаление того же ID
	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrGuestHouseNotFound)
}

func TestRepository_List_OrderAndFilter(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testHouse("Ambav Garh", 5))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testHouse("HDM Guest House", 2))
	require.NoError(t, err)

	jaipur := testHouse("City Palace Annexe", 3)
	jaipur.Address = "Jaipur"
	_, err = repo.Create(ctx, jaipur)
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Порядок добавления, не алфавитный
	assert.Equal(t, "Ambav Garh", all[0].Name)
	assert.Equal(t, "HDM Guest House", all[1].Name)
	assert.Equal(t, "City Palace Annexe", all[2].Name)

	// Фильтр без учета регистра, по имени
	byName, err := repo.List(ctx, "ambav")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ambav Garh", byName[0].Name)

	// Фильтр по адресу
	byAddress, err := repo.List(ctx, "JAIPUR")
	require.NoError(t, err)
	require.Len(t, byAddress, 1)
	assert.Equal(t, "City Palace Annexe", byAddress[0].Name)

	// Ничего не совпало
	none, err := repo.List(ctx, "bombay")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSplitFacilities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"single value", "Wi-Fi", []string{"Wi-Fi"}},
		{"comma separated", "Wi-Fi, AC, TV", []string{"Wi-Fi", "AC", "TV"}},
		{"no spaces after comma", "Wi-Fi,AC", []string{"Wi-Fi", "AC"}},
		{"trailing comma", "Wi-Fi, AC,", []string{"Wi-Fi", "AC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFacilities(tt.input))
		})
	}
}
