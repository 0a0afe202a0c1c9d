package check_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/GHM-BookingService/internal/usecase/check_availability"
)

// parseQuery разбирает query-параметры в модель use case.
// guestHouse, checkIn и checkOut обязательны, rooms и occupancy опциональны.
func parseQuery(query url.Values) (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		return nil, err
	}

	rooms := 0
	if raw := query.Get("rooms"); raw != "" {
		rooms, err = strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
	}

	return &checkAvailability.Request{
		GuestHouseName: query.Get("guestHouse"),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		RoomsRequested: rooms,
		Occupancy:      query.Get("occupancy"),
	}, nil
}
