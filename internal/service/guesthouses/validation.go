package guesthouses

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validateRequest валидирует запрос на границе хранилища.
// UI делает те же проверки, но сервис им не доверяет.
func validateRequest(req *models.GuestHouseRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !mobilePattern.MatchString(req.Mobile) {
		return ErrInvalidMobile
	}

	if req.Rooms < 0 {
		return fmt.Errorf("%w: rooms must not be negative", ErrInvalidInput)
	}

	if req.Rooms > domain.MaxRoomsPerGuestHouse || len(req.RoomDetails) > domain.MaxRoomsPerGuestHouse {
		return fmt.Errorf("%w: at most %d rooms per guest house", ErrTooManyRooms, domain.MaxRoomsPerGuestHouse)
	}

	return nil
}
