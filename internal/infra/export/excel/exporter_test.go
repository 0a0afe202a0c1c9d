package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

func TestExporter_GuestHouses(t *testing.T) {
	exporter := NewExporter()

	houses := []*domain.GuestHouse{
		{
			Name:       "Ambav Garh",
			Address:    "Udaipur",
			Caretaker:  "Ramesh",
			Mobile:     "9876543210",
			Facilities: []string{"Wi-Fi", "AC"},
			Rooms:      domain.SyncRooms(5, nil),
		},
		{
			Name:   "HDM Guest House",
			Mobile: "9812345670",
			Rooms:  domain.SyncRooms(2, nil),
		},
	}

	buf, err := exporter.GuestHouses(houses)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Единственный лист с ожидаемым именем
	assert.Equal(t, []string{GuestHousesSheet}, f.GetSheetList())

	rows, err := f.GetRows(GuestHousesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3) // заголовок + 2 дома

	assert.Equal(t, []string{"Name", "Address", "Caretaker", "Mobile", "Facilities", "Rooms"}, rows[0])
	assert.Equal(t, []string{"Ambav Garh", "Udaipur", "Ramesh", "9876543210", "Wi-Fi, AC", "5"}, rows[1])
	assert.Equal(t, "HDM Guest House", rows[2][0])
}

func TestExporter_GuestHouses_NoData(t *testing.T) {
	exporter := NewExporter()

	_, err := exporter.GuestHouses(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = exporter.GuestHouses([]*domain.GuestHouse{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExporter_Bookings(t *testing.T) {
	exporter := NewExporter()

	checkIn, err := time.Parse(domain.DateFormat, "2025-10-10")
	require.NoError(t, err)

	bookings := []*domain.Booking{
		{
			GuestName:      "Anil Kumar",
			GuestContact:   "9812345670",
			EmployeeID:     "E-1042",
			Department:     "Finance",
			Purpose:        "Official visit",
			CheckIn:        checkIn,
			CheckOut:       checkIn.AddDate(0, 0, 5),
			GuestHouseName: "Ambav Garh",
			RoomNumber:     "101",
		},
	}

	buf, err := exporter.Bookings(bookings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BookingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Guest Name", rows[0][0])
	assert.Equal(t, "Anil Kumar", rows[1][0])
	assert.Equal(t, "2025-10-10", rows[1][11])
	assert.Equal(t, "2025-10-15", rows[1][12])
}

func TestExporter_Bookings_NoData(t *testing.T) {
	exporter := NewExporter()

	_, err := exporter.Bookings(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
