package models

import (
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// Request модели

// BookingRequest запрос на создание или полную замену бронирования.
// Даты передаются строками в формате YYYY-MM-DD.
type BookingRequest struct {
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

	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`

	GuestHouseName string `json:"guestHouseName" validate:"required"`
	RoomNumber     string `json:"roomNumber"`
}

// ToDomain конвертирует запрос в доменную модель.
// Возвращает ошибку, если даты не соответствуют формату YYYY-MM-DD.
func (r *BookingRequest) ToDomain() (*domain.Booking, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

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
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		GuestHouseName: r.GuestHouseName,
		RoomNumber:     r.RoomNumber,
	}, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		GuestName:      b.GuestName,
		GuestContact:   b.GuestContact,
		EmployeeID:     b.EmployeeID,
		Department:     b.Department,
		Designation:    b.Designation,
		CostCenter:     b.CostCenter,
		EmployeeLevel:  b.EmployeeLevel,
		Purpose:        b.Purpose,
		ModeOfTravel:   b.ModeOfTravel,
		ComingFrom:     b.ComingFrom,
		GoingBack:      b.GoingBack,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		Nights:         b.Nights(),
		GuestHouseName: b.GuestHouseName,
		RoomNumber:     b.RoomNumber,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}
