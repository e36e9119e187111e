package get_daily_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	dailySchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_daily_schedule"
)

type GetDailyScheduleUseCase interface {
	Execute(ctx context.Context, in dailySchedule.In) (*domain.DailySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
