package delete_barber

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

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Status string `json:"status"`
}

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

// Handle DELETE /api/v1/barbers/{barberId}
// Мягкое удаление: мастер деактивируется, история бронирований сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberIDStr := vars["barberId"]

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	if err := h.service.Deactivate(r.Context(), barberID); err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("DELETE /barbers/{id} - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /barbers/{id} - Failed to deactivate barber: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /barbers/{id} - Barber deactivated successfully: barber_id=%d", barberID)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Status: "deactivated"})
}
