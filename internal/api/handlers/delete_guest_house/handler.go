package delete_guest_house

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses"
)

const (
	msgInvalidGuestHouseID = "некорректный ID гостевого дома"
	msgNotFound            = "гостевой дом не найден"
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

// Handle DELETE /api/v1/guest-houses/{guestHouseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestHouseID, err := strconv.ParseInt(vars["guestHouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /guest-houses/{id} - Invalid guest house ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestHouseID)
		return
	}

	if err := h.service.Delete(r.Context(), guestHouseID); err != nil {
		switch {
		case errors.Is(err, guesthouses.ErrGuestHouseNotFound):
			h.logger.Warn("DELETE /guest-houses/{id} - Guest house not found: id=%d", guestHouseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /guest-houses/{id} - Failed to delete guest house: id=%d, error=%v", guestHouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /guest-houses/{id} - Guest house deleted successfully: id=%d", guestHouseID)
	handlers.RespondNoContent(w)
}
