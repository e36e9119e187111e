package employees

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников и их назначений
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Employee, error)
	ListByLocation(ctx context.Context, locationID int64) ([]*domain.Employee, error)
	Update(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error

	ReplaceLocations(ctx context.Context, employeeID int64, locationIDs []int64) error
	ReplaceServices(ctx context.Context, employeeID int64, services []domain.EmployeeService) error
	ReplaceSchedule(ctx context.Context, employeeID int64, schedule domain.WeeklySchedule) error
	GetLocations(ctx context.Context, employeeID int64) ([]int64, error)
	GetServices(ctx context.Context, employeeID int64) ([]domain.EmployeeService, error)
	GetSchedule(ctx context.Context, employeeID int64) (domain.WeeklySchedule, error)
}

// ServiceCatalog интерфейс каталога услуг для обогащения назначений
type ServiceCatalog interface {
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// TransactionManager интерфейс для выполнения операций в транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
