package create_booking

import (
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestName    string
	GuestContact string

	EmployeeID    string
	Department    string
	Designation   string
	CostCenter    string
	EmployeeLevel string

	Purpose      string
	ModeOfTravel string
	ComingFrom   string
	GoingBack    string

	CheckIn  time.Time
	CheckOut time.Time

	GuestHouseName string
	RoomNumber     string
}

// toDomain конвертирует запрос в доменную модель
func (r *Request) toDomain() *domain.Booking {
	return &domain.Booking{
		GuestName:      r.GuestName,
		GuestContact:   r.GuestContact,
		EmployeeID:     r.EmployeeID,
		Department:     r.Department,
		Designation:    r.Designation,
		CostCenter:     r.CostCenter,
		EmployeeLevel:  r.EmployeeLevel,
		Purpose:        r.Purpose,
		ModeOfTravel:   r.ModeOfTravel,
		ComingFrom:     r.ComingFrom,
		GoingBack:      r.GoingBack,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		GuestHouseName: r.GuestHouseName,
		RoomNumber:     r.RoomNumber,
	}
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID int64 `json:"id"`

	GuestName    string `json:"guestName"`
	GuestContact string `json:"guestContact"`

	EmployeeID    string `json:"employeeId"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	CostCenter    string `json:"costCenter"`
	EmployeeLevel string `json:"level"`

	Purpose      string `json:"purpose"`
	ModeOfTravel string `json:"modeOfTravel"`
	ComingFrom   string `json:"comingFrom"`
	GoingBack    string `json:"goingBack"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`

	GuestHouseName string `json:"guestHouseName"`
	RoomNumber     string `json:"roomNumber"`

	// CapacityWarning заполняется, когда в доме не осталось свободных
	// комнат на запрошенные даты. Бронирование при этом все равно создано.
	CapacityWarning string `json:"capacityWarning,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
