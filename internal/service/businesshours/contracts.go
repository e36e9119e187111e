package businesshours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// HoursRepository интерфейс репозитория графиков работы
type HoursRepository interface {
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.BusinessHour, error)
	ReplaceForLocation(ctx context.Context, locationID int64, hours []*domain.BusinessHour) error
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// HoursCache кэш недельных графиков. Реализация может быть nil-safe
type HoursCache interface {
	Get(ctx context.Context, locationID int64) (domain.WeeklyHours, error)
	Set(ctx context.Context, locationID int64, hours domain.WeeklyHours) error
	Invalidate(ctx context.Context, locationID int64) error
}

// TransactionManager интерфейс для выполнения операций в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
