package get_location

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type LocationsService interface {
	Get(ctx context.Context, id int64) (*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
