package create_booking

import (
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	createBooking "github.com/m04kA/GHM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName    string `json:"guestName" validate:"required"`
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

	CheckIn  string `json:"checkIn" validate:"required"`  // "2025-10-15"
	CheckOut string `json:"checkOut" validate:"required"` // "2025-10-18"

	GuestHouseName string `json:"guestHouseName" validate:"required"`
	RoomNumber     string `json:"roomNumber"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
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
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		GuestHouseName: r.GuestHouseName,
		RoomNumber:     r.RoomNumber,
	}, nil
}
