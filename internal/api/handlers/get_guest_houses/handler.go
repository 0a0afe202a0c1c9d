package get_guest_houses

import (
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
)

type Handler struct {
	service GuestHouseService
	logger  Logger
}

func NewHandler(service GuestHouseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guest-houses?search=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filterTerm := r.URL.Query().Get("search")

	result, err := h.service.List(r.Context(), filterTerm)
	if err != nil {
		h.logger.Error("GET /guest-houses - Failed to list guest houses: filter=%q, error=%v", filterTerm, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guest-houses - Retrieved %d guest houses (filter=%q)", len(result.GuestHouses), filterTerm)
	handlers.RespondJSON(w, http.StatusOK, result)
}
