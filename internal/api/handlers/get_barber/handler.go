package get_barber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
	"github.com/annecarv/barber-schedule/internal/service/barbers"
)

const (
	msgInvalidBarberID = "некорректный ID мастера"
	msgNotFound        = "мастер не найден"
)

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

// Handle GET /api/v1/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberIDStr := vars["barberId"]

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	barber, err := h.service.GetByID(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id} - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /barbers/{id} - Failed to get barber: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id} - Barber retrieved successfully: barber_id=%d", barberID)
	handlers.RespondJSON(w, http.StatusOK, barber)
}
