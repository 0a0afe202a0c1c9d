package check_availability

import "time"

// Request модель запроса на расчет доступности
type Request struct {
	GuestHouseName string    // Название гостевого дома
	CheckIn        time.Time // Дата заезда (без времени)
	CheckOut       time.Time // Дата выезда (без времени)
	RoomsRequested int       // Сколько комнат нужно (по умолчанию 1)
	Occupancy      string    // Опциональный фильтр по вместимости комнат
}

// Response модель ответа с расчетом доступности
type Response struct {
	GuestHouseName string `json:"guestHouseName"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	TotalRooms     int    `json:"totalRooms"`
	Booked         int    `json:"booked"`
	Available      int    `json:"available"` // может быть отрицательным при овербукинге
	Sufficient     bool   `json:"sufficient"`
}
