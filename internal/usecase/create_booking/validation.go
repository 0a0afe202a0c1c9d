package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestHouseName) == "" {
		return fmt.Errorf("%w: guestHouseName is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.CheckOut.Before(req.CheckIn) {
		return ErrInvalidDateRange
	}

	return nil
}
