package restore_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	employeesService "github.com/m04kA/SMC-ScheduleService/internal/service/employees"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgEmployeeNotFound  = "сотрудник не найден"
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

// Handle PATCH /api/v1/employees/{employeeId}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /employees/{employeeId}/restore - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.service.Restore(r.Context(), employeeID); err != nil {
		switch {
		case errors.Is(err, employeesService.ErrEmployeeNotFound):
			h.logger.Warn("PATCH /employees/{employeeId}/restore - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			h.logger.Error("PATCH /employees/{employeeId}/restore - Failed to restore employee: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /employees/{employeeId}/restore - Employee restored: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
