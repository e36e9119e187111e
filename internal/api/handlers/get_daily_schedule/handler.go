package get_daily_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	dailySchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_daily_schedule"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgLocationNotFound  = "локация не найдена"
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDailyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDailyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{locationId}/schedule - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /locations/{locationId}/schedule - Missing date: location_id=%d", locationID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	schedule, err := h.useCase.Execute(r.Context(), dailySchedule.In{
		LocationID: locationID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dailySchedule.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{locationId}/schedule - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, dailySchedule.ErrInvalidDate):
			h.logger.Warn("GET /locations/{locationId}/schedule - Invalid date: location_id=%d, date=%q", locationID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /locations/{locationId}/schedule - Failed to build schedule: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(schedule))
}
