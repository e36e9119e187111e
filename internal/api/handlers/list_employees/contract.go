package list_employees

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type EmployeesService interface {
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
