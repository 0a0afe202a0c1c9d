package bookings

import (
	"fmt"
	"strings"

	"github.com/m04kA/GHM-BookingService/internal/service/bookings/models"
)

// validateRequest валидирует запрос на границе хранилища
func validateRequest(req *models.BookingRequest) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestHouseName) == "" {
		return fmt.Errorf("%w: guestHouseName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CheckIn) == "" || strings.TrimSpace(req.CheckOut) == "" {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return nil
}
