package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncRooms(t *testing.T) {
	rooms := []Room{
		{RoomNumber: "101", Occupancy: "Double"},
		{RoomNumber: "102", Occupancy: "Single"},
	}

	tests := []struct {
		name     string
		declared int
		rooms    []Room
		wantLen  int
	}{
		{"declared equals details", 2, rooms, 2},
		{"declared larger pads with empty rooms", 5, rooms, 5},
		{"declared smaller truncates", 1, rooms, 1},
		{"zero declared drops everything", 0, rooms, 0},
		{"negative declared treated as zero", -3, rooms, 0},
		{"no details at all", 3, nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SyncRooms(tt.declared, tt.rooms)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestSyncRooms_KeepsLeadingDetails(t *testing.T) {
	rooms := []Room{
		{RoomNumber: "101", Occupancy: "Double"},
		{RoomNumber: "102", Occupancy: "Single"},
	}

	got := SyncRooms(3, rooms)
	assert.Equal(t, "101", got[0].RoomNumber)
	assert.Equal(t, "102", got[1].RoomNumber)
	assert.Equal(t, Room{}, got[2])
}

func TestGuestHouse_Capacity(t *testing.T) {
	gh := &GuestHouse{Rooms: SyncRooms(4, nil)}
	assert.Equal(t, 4, gh.Capacity())

	empty := &GuestHouse{}
	assert.Equal(t, 0, empty.Capacity())
}

func TestGuestHouse_HasFacility(t *testing.T) {
	gh := &GuestHouse{Facilities: []string{"Wi-Fi", "AC"}}
	assert.True(t, gh.HasFacility("AC"))
	assert.False(t, gh.HasFacility("Parking"))
}
