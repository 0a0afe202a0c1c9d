package get_guest_house_stats

import (
	"net/http"

	"github.com/m04kA/GHM-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetHouseStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetHouseStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/guest-houses/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /guest-houses/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guest-houses/stats - Stats computed for %d guest houses", len(result.Stats))
	handlers.RespondJSON(w, http.StatusOK, result)
}
