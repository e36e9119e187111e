package get_daily_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// LocationProvider интерфейс получения локаций
type LocationProvider interface {
	Get(ctx context.Context, id int64) (*domain.Location, error)
}

// HoursProvider интерфейс получения недельного графика локации
type HoursProvider interface {
	GetLocationHours(ctx context.Context, locationID int64) (domain.WeeklyHours, error)
}

// EmployeeDirectory интерфейс получения сотрудников локации с графиками
type EmployeeDirectory interface {
	ListByLocation(ctx context.Context, locationID int64) ([]*domain.Employee, error)
}

// AppointmentProvider интерфейс получения записей сотрудников в диапазоне
type AppointmentProvider interface {
	GetForEmployees(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
