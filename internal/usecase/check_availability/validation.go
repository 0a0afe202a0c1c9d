package check_availability

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.GuestHouseName) == "" {
		return fmt.Errorf("%w: guestHouse is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.CheckOut.Before(req.CheckIn) {
		return ErrInvalidDateRange
	}

	if req.RoomsRequested < 0 {
		return fmt.Errorf("%w: rooms must not be negative", ErrInvalidInput)
	}

	return nil
}
