package update_location

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	locationsService "github.com/m04kA/SMC-ScheduleService/internal/service/locations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID локации"
	msgLocationNotFound   = "локация не найдена"
	msgInvalidTimezone    = "некорректное имя таймзоны"
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

// Handle PUT /api/v1/locations/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /locations/{locationId} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req UpdateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/{locationId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	loc, err := h.service.Update(r.Context(), locationID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, locationsService.ErrLocationNotFound):
			h.logger.Warn("PUT /locations/{locationId} - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, locationsService.ErrInvalidTimezone):
			h.logger.Warn("PUT /locations/{locationId} - Invalid timezone: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		default:
			h.logger.Error("PUT /locations/{locationId} - Failed to update location: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locations/{locationId} - Location updated: location_id=%d", locationID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(loc))
}
