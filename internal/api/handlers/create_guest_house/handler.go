package create_guest_house

import (
	"errors"
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses"
	"github.com/m04kA/GHM-BookingService/internal/service/guesthouses/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMobile      = "номер мобильного телефона должен состоять из 10 цифр"
	msgTooManyRooms       = "превышено максимальное количество комнат"
	msgInvalidInput       = "некорректные данные гостевого дома"
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

// Handle POST /api/v1/guest-houses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.GuestHouseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guest-houses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /guest-houses - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guesthouses.ErrInvalidMobile):
			h.logger.Warn("POST /guest-houses - Invalid mobile: name=%q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, guesthouses.ErrTooManyRooms):
			h.logger.Warn("POST /guest-houses - Too many rooms: name=%q", req.Name)
			handlers.RespondBadRequest(w, msgTooManyRooms)

		case errors.Is(err, guesthouses.ErrInvalidInput):
			h.logger.Warn("POST /guest-houses - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /guest-houses - Failed to create guest house: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guest-houses - Guest house created successfully: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
