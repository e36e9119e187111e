package save_location_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	businesshoursService "github.com/m04kA/SMC-ScheduleService/internal/service/businesshours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID локации"
	msgLocationNotFound   = "локация не найдена"
	msgInvalidWeekday     = "день недели должен быть в диапазоне 1..7"
	msgInvalidTime        = "некорректное время, ожидается HH:MM с шагом 15 минут"
	msgMissingTime        = "время открытия и закрытия задаются вместе"
	msgOrderViolation     = "время закрытия должно быть позже времени открытия"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/locations/{locationId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /locations/{locationId}/hours - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req SaveHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/{locationId}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := h.service.SaveLocationHours(r.Context(), locationID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, businesshoursService.ErrLocationNotFound):
			h.logger.Warn("PUT /locations/{locationId}/hours - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, businesshoursService.ErrInvalidWeekday):
			h.logger.Warn("PUT /locations/{locationId}/hours - Invalid weekday: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, businesshoursService.ErrInvalidTime):
			h.logger.Warn("PUT /locations/{locationId}/hours - Invalid time: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, businesshoursService.ErrMissingTime):
			h.logger.Warn("PUT /locations/{locationId}/hours - Missing time bound: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgMissingTime)

		case errors.Is(err, businesshoursService.ErrOrderViolation):
			h.logger.Warn("PUT /locations/{locationId}/hours - Order violation: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgOrderViolation)

		default:
			h.logger.Error("PUT /locations/{locationId}/hours - Failed to save hours: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locations/{locationId}/hours - Hours saved: location_id=%d", locationID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(locationID, hours))
}
