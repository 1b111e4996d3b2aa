package list_barbers

import (
	"net/http"
	"strconv"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
)

const msgInvalidActiveOnly = "некорректное значение параметра active_only"

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers
// Query params: active_only (опционально, по умолчанию true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if activeOnlyStr := r.URL.Query().Get("active_only"); activeOnlyStr != "" {
		parsed, err := strconv.ParseBool(activeOnlyStr)
		if err != nil {
			h.logger.Warn("GET /barbers - Invalid active_only: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
		activeOnly = parsed
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Returned %d barbers", len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
