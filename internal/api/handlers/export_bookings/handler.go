package export_bookings

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
	repo     BookingRepository
	exporter Exporter
	logger   Logger
}

func NewHandler(repo BookingRepository, exporter Exporter, logger Logger) *Handler {
	return &Handler{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.repo.List(r.Context(), "")
	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	buf, err := h.exporter.Bookings(bookings)
	if err != nil {
		if errors.Is(err, excel.ErrNoData) {
			h.logger.Warn("GET /bookings/export - No bookings to export")
			handlers.RespondError(w, http.StatusConflict, msgNoData)
			return
		}
		h.logger.Error("GET /bookings/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/export - Exported %d bookings", len(bookings))
	handlers.RespondAttachment(w, excel.BookingsFileName, xlsxContentType, buf)
}
