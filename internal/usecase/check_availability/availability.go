package check_availability

import (
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
)

// countConflictingBookings подсчитывает количество бронирований, пересекающихся
// с запрошенным диапазоном дат. Границы включительны: выезд одного гостя и заезд
// другого в один и тот же день считаются конфликтом, потому что комната в этот
// день занята обоими.
//
// Примеры:
// - Диапазон 10.01-15.01, бронирование 12.01-20.01 → ЕСТЬ конфликт
// - Диапазон 10.01-15.01, бронирование 15.01-18.01 → ЕСТЬ конфликт (граница)
// - Диапазон 10.01-15.01, бронирование 16.01-18.01 → НЕТ конфликта
func countConflictingBookings(bookings []*domain.Booking, checkIn, checkOut time.Time) int {
	count := 0
	for _, b := range bookings {
		if b.Overlaps(checkIn, checkOut) {
			count++
		}
	}
	return count
}

// countRooms подсчитывает вместимость дома, опционально с фильтром по типу
// комнаты. Пустой фильтр учитывает все комнаты.
func countRooms(gh *domain.GuestHouse, occupancy string) int {
	if gh == nil {
		return 0
	}
	if occupancy == "" {
		return gh.Capacity()
	}

	count := 0
	for _, room := range gh.Rooms {
		if room.Occupancy == occupancy {
			count++
		}
	}
	return count
}
