package check_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		CheckIn:  date(t, checkIn),
		CheckOut: date(t, checkOut),
	}
}

func TestCountConflictingBookings(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*domain.Booking
		checkIn  string
		checkOut string
		want     int
	}{
		{
			name:     "no bookings",
			bookings: nil,
			checkIn:  "2025-10-10",
			checkOut: "2025-10-15",
			want:     0,
		},
		{
			name:     "one overlapping",
			bookings: []*domain.Booking{booking(t, "2025-10-12", "2025-10-20")},
			checkIn:  "2025-10-10",
			checkOut: "2025-10-15",
			want:     1,
		},
		{
			name: "overlap on shared boundary date",
			// Выезд существующего гостя в день запрошенного заезда
			bookings: []*domain.Booking{booking(t, "2025-10-05", "2025-10-10")},
			checkIn:  "2025-10-10",
			checkOut: "2025-10-15",
			want:     1,
		},
		{
			name:     "booking entirely before range",
			bookings: []*domain.Booking{booking(t, "2025-10-01", "2025-10-09")},
			checkIn:  "2025-10-10",
			checkOut: "2025-10-15",
			want:     0,
		},
		{
			name: "mixed set",
			bookings: []*domain.Booking{
				booking(t, "2025-10-01", "2025-10-09"),
				booking(t, "2025-10-12", "2025-10-13"),
				booking(t, "2025-10-15", "2025-10-20"),
				booking(t, "2025-10-16", "2025-10-20"),
			},
			checkIn:  "2025-10-10",
			checkOut: "2025-10-15",
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countConflictingBookings(tt.bookings, date(t, tt.checkIn), date(t, tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountConflictingBookings_OrderIndependent(t *testing.T) {
	forward := []*domain.Booking{
		booking(t, "2025-10-01", "2025-10-09"),
		booking(t, "2025-10-12", "2025-10-13"),
		booking(t, "2025-10-15", "2025-10-20"),
	}
	reversed := []*domain.Booking{forward[2], forward[1], forward[0]}

	checkIn, checkOut := date(t, "2025-10-10"), date(t, "2025-10-15")
	assert.Equal(t,
		countConflictingBookings(forward, checkIn, checkOut),
		countConflictingBookings(reversed, checkIn, checkOut),
	)
}

func TestCountRooms(t *testing.T) {
	gh := &domain.GuestHouse{
		Rooms: []domain.Room{
			{RoomNumber: "101", Occupancy: "Double"},
			{RoomNumber: "102", Occupancy: "Single"},
			{RoomNumber: "103", Occupancy: "Double"},
		},
	}

	assert.Equal(t, 3, countRooms(gh, ""))
	assert.Equal(t, 2, countRooms(gh, "Double"))
	assert.Equal(t, 1, countRooms(gh, "Single"))
	assert.Equal(t, 0, countRooms(gh, "Suite"))
	assert.Equal(t, 0, countRooms(nil, ""))
}
