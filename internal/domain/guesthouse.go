package domain

import "time"

// Room represents a single room declared for a guest house
type Room struct {
	RoomNumber string
	Occupancy  string
}

// GuestHouse represents a managed guest house in the registry
type GuestHouse struct {
	ID         int64
	Name       string
	Address    string
	Caretaker  string
	Mobile     string
	Facilities []string
	Rooms      []Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Capacity returns the total room count of the guest house.
// Capacity is always derived from the rooms list, never stored separately.
func (g *GuestHouse) Capacity() int {
	return len(g.Rooms)
}

// HasFacility returns true if the guest house declares the given facility
func (g *GuestHouse) HasFacility(name string) bool {
	for _, f := range g.Facilities {
		if f == name {
			return true
		}
	}
	return false
}

// SyncRooms reconciles a declared room count with a room details list.
// If the declared count is larger, the list is padded with empty rooms;
// if smaller, the list is truncated. The returned list always has exactly
// declared entries, keeping the count and the details in sync.
func SyncRooms(declared int, rooms []Room) []Room {
	if declared < 0 {
		declared = 0
	}

	synced := make([]Room, 0, declared)
	for i := 0; i < declared; i++ {
		if i < len(rooms) {
			synced = append(synced, rooms[i])
			continue
		}
		synced = append(synced, Room{})
	}

	return synced
}
