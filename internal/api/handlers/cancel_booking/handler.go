package cancel_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаление идемпотентно: повторный запрос на тот же ID тоже вернет 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%d", bookingID)
	handlers.RespondNoContent(w)
}
