package create_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	employeesService "github.com/m04kA/SMC-ScheduleService/internal/service/employees"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "имя сотрудника не может быть пустым"
	msgInvalidVisibility  = "некорректное значение видимости"
	msgInvalidWeekday     = "день недели должен быть в диапазоне 1..7"
	msgInvalidSchedule    = "некорректный рабочий график"
	msgInvalidBreak       = "перерыв должен лежать внутри рабочего интервала"
)

type Handler struct {
	service EmployeesService
	logger  Logger
}

func NewHandler(service EmployeesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" {
		h.logger.Warn("POST /employees - Empty employee name")
		handlers.RespondBadRequest(w, msgEmptyName)
		return
	}

	emp, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrInvalidVisibility):
			h.logger.Warn("POST /employees - Invalid visibility: %q", req.Visibility)
			handlers.RespondBadRequest(w, msgInvalidVisibility)

		case errors.Is(err, employeesService.ErrInvalidWeekday):
			h.logger.Warn("POST /employees - Invalid weekday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, employeesService.ErrInvalidScheduleBreak):
			h.logger.Warn("POST /employees - Invalid schedule break: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBreak)

		case errors.Is(err, employeesService.ErrInvalidSchedule):
			h.logger.Warn("POST /employees - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee created: employee_id=%d", emp.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(emp))
}
