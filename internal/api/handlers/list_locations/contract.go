package list_locations

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type LocationsService interface {
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
