package update_guest_house

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

const (
	msgInvalidGuestHouseID = "некорректный ID гостевого дома"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidMobile       = "номер мобильного телефона должен состоять из 10 цифр"
	msgTooManyRooms        = "превышено максимальное количество комнат"
	msgInvalidInput        = "некорректные данные гостевого дома"
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

// Handle PUT /api/v1/guest-houses/{guestHouseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestHouseID, err := strconv.ParseInt(vars["guestHouseId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /guest-houses/{id} - Invalid guest house ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestHouseID)
		return
	}

	var req models.GuestHouseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guest-houses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /guest-houses/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.service.Update(r.Context(), guestHouseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guesthouses.ErrGuestHouseNotFound):
			h.logger.Warn("PUT /guest-houses/{id} - Guest house not found: id=%d", guestHouseID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, guesthouses.ErrInvalidMobile):
			h.logger.Warn("PUT /guest-houses/{id} - Invalid mobile: id=%d", guestHouseID)
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, guesthouses.ErrTooManyRooms):
			h.logger.Warn("PUT /guest-houses/{id} - Too many rooms: id=%d", guestHouseID)
			handlers.RespondBadRequest(w, msgTooManyRooms)

		case errors.Is(err, guesthouses.ErrInvalidInput):
			h.logger.Warn("PUT /guest-houses/{id} - Invalid input: id=%d, error=%v", guestHouseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /guest-houses/{id} - Failed to update guest house: id=%d, error=%v", guestHouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /guest-houses/{id} - Guest house updated successfully: id=%d", guestHouseID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
