package get_location_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type BusinessHoursService interface {
	GetLocationHours(ctx context.Context, locationID int64) (domain.WeeklyHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
