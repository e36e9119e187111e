package create_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	locationsService "github.com/m04kA/SMC-ScheduleService/internal/service/locations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "название локации не может быть пустым"
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

// Handle POST /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" {
		h.logger.Warn("POST /locations - Empty location name")
		handlers.RespondBadRequest(w, msgEmptyName)
		return
	}

	loc, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, locationsService.ErrInvalidTimezone):
			h.logger.Warn("POST /locations - Invalid timezone: %q", req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		default:
			h.logger.Error("POST /locations - Failed to create location: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations - Location created: location_id=%d", loc.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(loc))
}
