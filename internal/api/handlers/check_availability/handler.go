package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/GHM-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
	msgInvalidDateRange = "дата выезда не может быть раньше даты заезда"
	msgInvalidInput     = "некорректные параметры запроса доступности"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?guestHouse=...&checkIn=...&checkOut=...&rooms=...&occupancy=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid date range: house=%q", req.GuestHouseName)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: house=%q, error=%v", req.GuestHouseName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - house=%q available=%d", result.GuestHouseName, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
