package get_bookings

import (
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/bookings?search=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filterTerm := r.URL.Query().Get("search")

	result, err := h.service.List(r.Context(), filterTerm)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: filter=%q, error=%v", filterTerm, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings (filter=%q)", len(result.Bookings), filterTerm)
	handlers.RespondJSON(w, http.StatusOK, result)
}
