package get_employee

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

type EmployeesService interface {
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	EnrichServices(ctx context.Context, assigned []domain.EmployeeService) ([]models.EnrichedService, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
