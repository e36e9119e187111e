package restore_location

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	locationsService "github.com/m04kA/SMC-ScheduleService/internal/service/locations"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/locations/{locationId}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /locations/{locationId}/restore - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	if err := h.service.Restore(r.Context(), locationID); err != nil {
		switch {
		case errors.Is(err, locationsService.ErrLocationNotFound):
			h.logger.Warn("PATCH /locations/{locationId}/restore - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("PATCH /locations/{locationId}/restore - Failed to restore location: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /locations/{locationId}/restore - Location restored: location_id=%d", locationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
