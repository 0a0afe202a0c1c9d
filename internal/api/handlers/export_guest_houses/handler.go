package export_guest_houses

import (
	"errors"
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
	"github.com/m04kA/GHM-BookingService/internal/infra/export/excel"
)

const (
	msgNoData = "нет данных для выгрузки"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	repo     GuestHouseRepository
	exporter Exporter
	logger   Logger
}

func NewHandler(repo GuestHouseRepository, exporter Exporter, logger Logger) *Handler {
	return &Handler{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/guest-houses/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	houses, err := h.repo.List(r.Context(), "")
	if err != nil {
		h.logger.Error("GET /guest-houses/export - Failed to list guest houses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	buf, err := h.exporter.GuestHouses(houses)
	if err != nil {
		if errors.Is(err, excel.ErrNoData) {
			h.logger.Warn("GET /guest-houses/export - No guest houses to export")
			handlers.RespondError(w, http.StatusConflict, msgNoData)
			return
		}
		h.logger.Error("GET /guest-houses/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guest-houses/export - Exported %d guest houses", len(houses))
	handlers.RespondAttachment(w, excel.GuestHousesFileName, xlsxContentType, buf)
}
