package models

import (
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// Request модели

// RoomDetails детали одной комнаты
type RoomDetails struct {
	RoomNumber string `json:"roomNumber"`
	Occupancy  string `json:"occupancy"`
}

// GuestHouseRequest запрос на создание или полную замену гостевого дома.
// Rooms - заявленное количество комнат, RoomDetails - их описание.
// Сервис синхронизирует счетчик и список на границе записи.
type GuestHouseRequest struct {
	Name        string        `json:"name" validate:"required"`
	Address     string        `json:"address"`
	Caretaker   string        `json:"caretaker"`
	Mobile      string        `json:"mobile" validate:"required,len=10,numeric"`
	Facilities  []string      `json:"facilities"`
	Rooms       int           `json:"rooms" validate:"min=0,max=100"`
	RoomDetails []RoomDetails `json:"roomDetails"`
}

// ToDomain конвертирует запрос в доменную модель.
// Если заявленное количество комнат не указано, истиной считается список
// деталей; иначе список дополняется пустыми комнатами или усекается до
// заявленного количества.
func (r *GuestHouseRequest) ToDomain() *domain.GuestHouse {
	rooms := make([]domain.Room, len(r.RoomDetails))
	for i, rd := range r.RoomDetails {
		rooms[i] = domain.Room{RoomNumber: rd.RoomNumber, Occupancy: rd.Occupancy}
	}

	declared := r.Rooms
	if declared == 0 && len(rooms) > 0 {
		declared = len(rooms)
	}

	facilities := r.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return &domain.GuestHouse{
		Name:       r.Name,
		Address:    r.Address,
		Caretaker:  r.Caretaker,
		Mobile:     r.Mobile,
		Facilities: facilities,
		Rooms:      domain.SyncRooms(declared, rooms),
	}
}

// Response модели

// GuestHouseResponse ответ с данными гостевого дома
type GuestHouseResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Caretaker   string        `json:"caretaker"`
	Mobile      string        `json:"mobile"`
	Facilities  []string      `json:"facilities"`
	Rooms       int           `json:"rooms"` // всегда равно len(roomDetails)
	RoomDetails []RoomDetails `json:"roomDetails"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// GuestHouseListResponse ответ со списком гостевых домов
type GuestHouseListResponse struct {
	GuestHouses []GuestHouseResponse `json:"guestHouses"`
}

// FromDomainGuestHouse конвертирует доменную модель в DTO
func FromDomainGuestHouse(gh *domain.GuestHouse) *GuestHouseResponse {
	if gh == nil {
		return nil
	}

	details := make([]RoomDetails, len(gh.Rooms))
	for i, room := range gh.Rooms {
		details[i] = RoomDetails{RoomNumber: room.RoomNumber, Occupancy: room.Occupancy}
	}

	return &GuestHouseResponse{
		ID:          gh.ID,
		Name:        gh.Name,
		Address:     gh.Address,
		Caretaker:   gh.Caretaker,
		Mobile:      gh.Mobile,
		Facilities:  gh.Facilities,
		Rooms:       gh.Capacity(),
		RoomDetails: details,
		CreatedAt:   gh.CreatedAt,
		UpdatedAt:   gh.UpdatedAt,
	}
}

// FromDomainGuestHouseList конвертирует список доменных моделей в DTO
func FromDomainGuestHouseList(houses []*domain.GuestHouse) *GuestHouseListResponse {
	resp := &GuestHouseListResponse{
		GuestHouses: make([]GuestHouseResponse, 0, len(houses)),
	}

	for _, gh := range houses {
		if r := FromDomainGuestHouse(gh); r != nil {
			resp.GuestHouses = append(resp.GuestHouses, *r)
		}
	}

	return resp
}
