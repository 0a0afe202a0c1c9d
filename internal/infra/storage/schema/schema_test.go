package schema

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApply_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, db))
	// Повторный Apply не ломает существующую схему
	require.NoError(t, Apply(ctx, db))
}

func TestSeedDemoData(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, db))
	require.NoError(t, SeedDemoData(ctx, db))

	var houses, rooms, bookings int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM guest_houses`).Scan(&houses))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM guest_house_rooms`).Scan(&rooms))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&bookings))

	assert.Equal(t, len(seedGuestHouses), houses)
	assert.Equal(t, len(seedBookings), bookings)

	wantRooms := 0
	for _, gh := range seedGuestHouses {
		wantRooms += gh.rooms
	}
	assert.Equal(t, wantRooms, rooms)
}
