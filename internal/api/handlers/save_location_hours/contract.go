package save_location_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	SaveLocationHours(ctx context.Context, locationID int64, in models.SaveHoursIn) (domain.WeeklyHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
