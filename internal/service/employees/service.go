package employees

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// Service сервис управления сотрудниками
type Service struct {
	repo      EmployeeRepository
	catalog   ServiceCatalog
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый сервис сотрудников
func NewService(repo EmployeeRepository, catalog ServiceCatalog, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает сотрудника вместе с назначениями и графиком.
// Весь ввод валидируется до первой записи в БД
func (s *Service) Create(ctx context.Context, in models.CreateEmployeeIn) (*domain.Employee, error) {
	if err := validateVisibility(in.Visibility); err != nil {
		return nil, err
	}

	schedule, err := validateSchedule(in.Schedule)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Visibility: domain.EmployeeVisibility(in.Visibility),
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, emp)
		if err != nil {
			return fmt.Errorf("repo.Create: %w", err)
		}
		emp = created

		if err := s.repo.ReplaceLocations(ctx, emp.ID, in.LocationIDs); err != nil {
			return fmt.Errorf("repo.ReplaceLocations: %w", err)
		}
		if err := s.repo.ReplaceServices(ctx, emp.ID, toDomainServices(in.Services)); err != nil {
			return fmt.Errorf("repo.ReplaceServices: %w", err)
		}
		if err := s.repo.ReplaceSchedule(ctx, emp.ID, schedule); err != nil {
			return fmt.Errorf("repo.ReplaceSchedule: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("[employees.Create] Ошибка создания сотрудника: %v", err)
		return nil, fmt.Errorf("Create - %w", err)
	}

	emp.LocationIDs = in.LocationIDs
	emp.Services = toDomainServices(in.Services)
	emp.Schedule = schedule

	s.logger.Info("[employees.Create] Сотрудник создан: id=%d name=%s", emp.ID, emp.Name)
	return emp, nil
}

// Get получает сотрудника с назначениями и графиком
func (s *Service) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("[employees.Get] Ошибка получения сотрудника id=%d: %v", id, err)
		return nil, fmt.Errorf("Get - repo.GetByID: %w", err)
	}

	if err := s.loadAssignments(ctx, emp); err != nil {
		return nil, fmt.Errorf("Get - %w", err)
	}

	return emp, nil
}

// List получает список сотрудников с назначениями.
// Сортировка по имени регистронезависимая, при равенстве имен по ID
func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Employee, error) {
	emps, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("[employees.List] Ошибка получения списка сотрудников: %v", err)
		return nil, fmt.Errorf("List - repo.List: %w", err)
	}

	for _, emp := range emps {
		if err := s.loadAssignments(ctx, emp); err != nil {
			return nil, fmt.Errorf("List - %w", err)
		}
	}

	sort.SliceStable(emps, func(i, j int) bool {
		ni, nj := strings.ToLower(emps[i].Name), strings.ToLower(emps[j].Name)
		if ni != nj {
			return ni < nj
		}
		return emps[i].ID < emps[j].ID
	})

	return emps, nil
}

// ListByLocation получает сотрудников локации с их графиками.
// Используется календарным агрегатором
func (s *Service) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Employee, error) {
	emps, err := s.repo.ListByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("[employees.ListByLocation] Ошибка получения сотрудников локации %d: %v", locationID, err)
		return nil, fmt.Errorf("ListByLocation - repo.ListByLocation: %w", err)
	}

	for _, emp := range emps {
		schedule, err := s.repo.GetSchedule(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("ListByLocation - repo.GetSchedule: %w", err)
		}
		emp.Schedule = schedule
	}

	return emps, nil
}

// Update частично обновляет сотрудника.
// Nil срезы назначений оставляют текущие назначения без изменений
func (s *Service) Update(ctx context.Context, id int64, in models.UpdateEmployeeIn) (*domain.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("Update - repo.GetByID: %w", err)
	}

	if in.Visibility != nil {
		if err := validateVisibility(*in.Visibility); err != nil {
			return nil, err
		}
		emp.Visibility = domain.EmployeeVisibility(*in.Visibility)
	}
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}

	var schedule domain.WeeklySchedule
	if in.Schedule != nil {
		schedule, err = validateSchedule(in.Schedule)
		if err != nil {
			return nil, err
		}
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Update(ctx, id, emp); err != nil {
			return fmt.Errorf("repo.Update: %w", err)
		}
		if in.LocationIDs != nil {
			if err := s.repo.ReplaceLocations(ctx, id, in.LocationIDs); err != nil {
				return fmt.Errorf("repo.ReplaceLocations: %w", err)
			}
		}
		if in.Services != nil {
			if err := s.repo.ReplaceServices(ctx, id, toDomainServices(in.Services)); err != nil {
				return fmt.Errorf("repo.ReplaceServices: %w", err)
			}
		}
		if schedule != nil {
			if err := s.repo.ReplaceSchedule(ctx, id, schedule); err != nil {
				return fmt.Errorf("repo.ReplaceSchedule: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("[employees.Update] Ошибка обновления сотрудника id=%d: %v", id, err)
		return nil, fmt.Errorf("Update - %w", err)
	}

	if err := s.loadAssignments(ctx, emp); err != nil {
		return nil, fmt.Errorf("Update - %w", err)
	}

	s.logger.Info("[employees.Update] Сотрудник обновлен: id=%d", id)
	return emp, nil
}

// Delete помечает сотрудника удаленным
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("[employees.Delete] Ошибка удаления сотрудника id=%d: %v", id, err)
		return fmt.Errorf("Delete - repo.SoftDelete: %w", err)
	}

	s.logger.Info("[employees.Delete] Сотрудник помечен удаленным: id=%d", id)
	return nil
}

// Restore восстанавливает мягко удаленного сотрудника
func (s *Service) Restore(ctx context.Context, id int64) error {
	if err := s.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("[employees.Restore] Ошибка восстановления сотрудника id=%d: %v", id, err)
		return fmt.Errorf("Restore - repo.Restore: %w", err)
	}

	s.logger.Info("[employees.Restore] Сотрудник восстановлен: id=%d", id)
	return nil
}

// EnrichServices дополняет назначения сотрудника данными каталога услуг.
// Назначения на отсутствующие в каталоге услуги пропускаются.
// Эффективная цена: переопределение сотрудника, иначе цена каталога
func (s *Service) EnrichServices(ctx context.Context, assigned []domain.EmployeeService) ([]models.EnrichedService, error) {
	if len(assigned) == 0 {
		return []models.EnrichedService{}, nil
	}

	ids := make([]int64, 0, len(assigned))
	for _, svc := range assigned {
		ids = append(ids, svc.ServiceID)
	}

	catalogServices, err := s.catalog.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("[employees.EnrichServices] Ошибка чтения каталога услуг: %v", err)
		return nil, fmt.Errorf("EnrichServices - catalog.ListByIDs: %w", err)
	}

	byID := make(map[int64]*domain.Service, len(catalogServices))
	for _, svc := range catalogServices {
		byID[svc.ID] = svc
	}

	enriched := make([]models.EnrichedService, 0, len(assigned))
	for _, svc := range assigned {
		catalogSvc, ok := byID[svc.ServiceID]
		if !ok {
			s.logger.Warn("[employees.EnrichServices] Услуга %d не найдена в каталоге, назначение пропущено", svc.ServiceID)
			continue
		}

		price := catalogSvc.Price
		if svc.Price != nil {
			price = *svc.Price
		}

		enriched = append(enriched, models.EnrichedService{
			ServiceID:       svc.ServiceID,
			Name:            catalogSvc.Name,
			DurationMinutes: catalogSvc.DurationMinutes,
			Price:           price,
			SortOrder:       svc.SortOrder,
		})
	}

	return enriched, nil
}

func (s *Service) loadAssignments(ctx context.Context, emp *domain.Employee) error {
	locationIDs, err := s.repo.GetLocations(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("repo.GetLocations: %w", err)
	}
	services, err := s.repo.GetServices(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("repo.GetServices: %w", err)
	}
	schedule, err := s.repo.GetSchedule(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("repo.GetSchedule: %w", err)
	}

	emp.LocationIDs = locationIDs
	emp.Services = services
	emp.Schedule = schedule
	return nil
}
