package update_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	employeesService "github.com/m04kA/SMC-ScheduleService/internal/service/employees"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgEmployeeNotFound   = "сотрудник не найден"
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

// Handle PUT /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /employees/{employeeId} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{employeeId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	emp, err := h.service.Update(r.Context(), employeeID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{employeeId} - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, employeesService.ErrInvalidVisibility):
			h.logger.Warn("PUT /employees/{employeeId} - Invalid visibility: employee_id=%d", employeeID)
			handlers.RespondBadRequest(w, msgInvalidVisibility)

		case errors.Is(err, employeesService.ErrInvalidWeekday):
			h.logger.Warn("PUT /employees/{employeeId} - Invalid weekday: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, employeesService.ErrInvalidScheduleBreak):
			h.logger.Warn("PUT /employees/{employeeId} - Invalid schedule break: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidBreak)

		case errors.Is(err, employeesService.ErrInvalidSchedule):
			h.logger.Warn("PUT /employees/{employeeId} - Invalid schedule: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /employees/{employeeId} - Failed to update employee: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/{employeeId} - Employee updated: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(emp))
}
