package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// Имена листов и файлов выгрузки
const (
	GuestHousesSheet    = "Guest Houses"
	GuestHousesFileName = "GuestHouses.xlsx"
	BookingsSheet       = "Bookings"
	BookingsFileName    = "Bookings.xlsx"
)

var guestHouseHeaders = []interface{}{
	"Name", "Address", "Caretaker", "Mobile", "Facilities", "Rooms",
}

var bookingHeaders = []interface{}{
	"Guest Name", "Guest Contact", "Employee ID", "Department", "Designation",
	"Cost Center", "Level", "Purpose", "Mode Of Travel", "Coming From",
	"Going Back", "Check In", "Check Out", "Guest House", "Room Number",
}

// Exporter собирает xlsx-книги из доменных моделей
type Exporter struct{}

// NewExporter создает новый экземпляр экспортера
func NewExporter() *Exporter {
	return &Exporter{}
}

// GuestHouses выгружает реестр гостевых домов в книгу с одним листом.
// Пустой реестр - не книга с одними заголовками, а ErrNoData.
func (e *Exporter) GuestHouses(houses []*domain.GuestHouse) (*bytes.Buffer, error) {
	if len(houses) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]interface{}, 0, len(houses))
	for _, gh := range houses {
		rows = append(rows, []interface{}{
			gh.Name,
			gh.Address,
			gh.Caretaker,
			gh.Mobile,
			strings.Join(gh.Facilities, ", "),
			gh.Capacity(),
		})
	}

	return writeSheet(GuestHousesSheet, guestHouseHeaders, rows)
}

// Bookings выгружает список бронирований в книгу с одним листом
func (e *Exporter) Bookings(bookings []*domain.Booking) (*bytes.Buffer, error) {
	if len(bookings) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]interface{}, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []interface{}{
			b.GuestName,
			b.GuestContact,
			b.EmployeeID,
			b.Department,
			b.Designation,
			b.CostCenter,
			b.EmployeeLevel,
			b.Purpose,
			b.ModeOfTravel,
			b.ComingFrom,
			b.GoingBack,
			b.CheckIn.Format(domain.DateFormat),
			b.CheckOut.Format(domain.DateFormat),
			b.GuestHouseName,
			b.RoomNumber,
		})
	}

	return writeSheet(BookingsSheet, bookingHeaders, rows)
}

// writeSheet собирает книгу с одним листом: строка заголовков, затем данные
func writeSheet(sheetName string, headers []interface{}, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", ErrWriteWorkbook, err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("%w: write headers: %v", ErrWriteWorkbook, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: row coordinates: %v", ErrWriteWorkbook, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: write row %d: %v", ErrWriteWorkbook, i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteWorkbook, err)
	}

	return buf, nil
}
