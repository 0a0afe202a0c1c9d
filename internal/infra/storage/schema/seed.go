package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

type seedGuestHouse struct {
	name       string
	address    string
	caretaker  string
	mobile     string
	facilities string
	rooms      int
}

type seedBooking struct {
	guestName      string
	guestContact   string
	checkIn        string
	checkOut       string
	guestHouseName string
	roomNumber     string
}

var seedGuestHouses = []seedGuestHouse{
	{
		name:       "Master Guest House",
		address:    "Plot No. 12, Sector 45, Noida, Uttar Pradesh - 201301",
		caretaker:  "Mr. Ramesh Sharma",
		mobile:     "9810234567",
		facilities: "Wi-Fi, Refrigerator, Laundry, Kettle, Iron, Hairdryer",
		rooms:      5,
	},
	{
		name:       "Green Leaf Guest House",
		address:    "18/3, M.G. Road, Indiranagar, Bengaluru, Karnataka - 560038",
		caretaker:  "Mrs. Sunita Iyer",
		mobile:     "9341234560",
		facilities: "Wi-Fi, Lift, Refrigerator",
		rooms:      5,
	},
	{
		name:       "Palm Residency",
		address:    "C-204, Lajpat Nagar II, New Delhi - 110024",
		caretaker:  "Mr. Rajesh Verma",
		mobile:     "8826754321",
		facilities: "Wi-Fi, Lift, Refrigerator",
		rooms:      5,
	},
	{
		name:       "Sunrise Stay Guest House",
		address:    "7/22, Anna Nagar East, Chennai, Tamil Nadu - 600102",
		caretaker:  "Ms. Kavitha R.",
		mobile:     "9003056789",
		facilities: "Wi-Fi, Lift, Refrigerator",
		rooms:      5,
	},
	{
		name:      "Ambav Garh",
		caretaker: "Mr. Mohan Singh",
		mobile:    "9876501234",
		rooms:     5,
	},
	{
		name:      "HDM Guest House",
		caretaker: "Mr. Prakash Joshi",
		mobile:    "9123406789",
		rooms:     2,
	},
	{
		name:      "Demo Guest House 1",
		caretaker: "Mr. Anil Kumar",
		mobile:    "9988776655",
		rooms:     5,
	},
}

var seedBookings = []seedBooking{
	{
		guestName:      "Sourmik Baithalu",
		guestContact:   "341324234",
		checkIn:        "2025-05-27",
		checkOut:       "2025-05-27",
		guestHouseName: "Demo Guest House 1",
		roomNumber:     "1",
	},
	{
		guestName:      "Test",
		guestContact:   "7656767692",
		checkIn:        "2024-10-18",
		checkOut:       "2024-10-21",
		guestHouseName: "Ambav Garh",
		roomNumber:     "1",
	},
}

// SeedDemoData наполняет пустую базу демонстрационными данными.
// Вызывается только при demo.seed_data = true.
func SeedDemoData(ctx context.Context, db *sql.DB) error {
	for _, gh := range seedGuestHouses {
		res, err := db.ExecContext(ctx,
			`INSERT INTO guest_houses (name, address, caretaker, mobile, facilities)
			 VALUES (?, ?, ?, ?, ?)`,
			gh.name, gh.address, gh.caretaker, gh.mobile, gh.facilities,
		)
		if err != nil {
			return fmt.Errorf("schema: seed guest house %q: %w", gh.name, err)
		}

		houseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("schema: seed guest house %q: %w", gh.name, err)
		}

		for i := 0; i < gh.rooms; i++ {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO guest_house_rooms (guest_house_id, position, room_number, occupancy)
				 VALUES (?, ?, ?, ?)`,
				houseID, i, strconv.Itoa(i+1), "Double",
			); err != nil {
				return fmt.Errorf("schema: seed rooms for %q: %w", gh.name, err)
			}
		}
	}

	for _, b := range seedBookings {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO bookings (guest_name, guest_contact, check_in, check_out, guest_house_name, room_number)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			b.guestName, b.guestContact, b.checkIn, b.checkOut, b.guestHouseName, b.roomNumber,
		); err != nil {
			return fmt.Errorf("schema: seed booking for %q: %w", b.guestName, err)
		}
	}

	return nil
}
