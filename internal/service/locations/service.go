package locations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/locations/models"
)

// Service сервис управления локациями
type Service struct {
	repo   LocationRepository
	logger Logger
}

// NewService создает новый сервис локаций
func NewService(repo LocationRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает новую локацию
func (s *Service) Create(ctx context.Context, in models.CreateLocationIn) (*domain.Location, error) {
	if err := validateTimezone(in.Timezone); err != nil {
		return nil, err
	}

	loc := &domain.Location{
		Name:     in.Name,
		Address:  in.Address,
		City:     in.City,
		Phone:    in.Phone,
		Email:    in.Email,
		Timezone: in.Timezone,
		Industry: in.Industry,
	}

	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		s.logger.Error("[locations.Create] Ошибка создания локации: %v", err)
		return nil, fmt.Errorf("Create - repo.Create: %w", err)
	}

	s.logger.Info("[locations.Create] Локация создана: id=%d name=%s", created.ID, created.Name)
	return created, nil
}

// Get получает локацию по ID (включая мягко удаленные)
func (s *Service) Get(ctx context.Context, id int64) (*domain.Location, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("[locations.Get] Ошибка получения локации id=%d: %v", id, err)
		return nil, fmt.Errorf("Get - repo.GetByID: %w", err)
	}

	return loc, nil
}

// List получает список локаций с учетом soft-delete фильтра
func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Location, error) {
	locs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("[locations.List] Ошибка получения списка локаций: %v", err)
		return nil, fmt.Errorf("List - repo.List: %w", err)
	}

	return locs, nil
}

// Update частично обновляет локацию. Nil поля не изменяются
func (s *Service) Update(ctx context.Context, id int64, in models.UpdateLocationIn) (*domain.Location, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("Update - repo.GetByID: %w", err)
	}

	if in.Timezone != nil {
		if err := validateTimezone(*in.Timezone); err != nil {
			return nil, err
		}
		loc.Timezone = *in.Timezone
	}
	if in.Name != nil {
		loc.Name = *in.Name
	}
	if in.Address != nil {
		loc.Address = *in.Address
	}
	if in.City != nil {
		loc.City = *in.City
	}
	if in.Phone != nil {
		loc.Phone = *in.Phone
	}
	if in.Email != nil {
		loc.Email = *in.Email
	}
	if in.Industry != nil {
		loc.Industry = *in.Industry
	}

	updated, err := s.repo.Update(ctx, id, loc)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("[locations.Update] Ошибка обновления локации id=%d: %v", id, err)
		return nil, fmt.Errorf("Update - repo.Update: %w", err)
	}

	s.logger.Info("[locations.Update] Локация обновлена: id=%d", id)
	return updated, nil
}

// Delete помечает локацию удаленной. Повторное удаление идемпотентно
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("[locations.Delete] Ошибка удаления локации id=%d: %v", id, err)
		return fmt.Errorf("Delete - repo.SoftDelete: %w", err)
	}

	s.logger.Info("[locations.Delete] Локация помечена удаленной: id=%d", id)
	return nil
}

// Restore восстанавливает мягко удаленную локацию
func (s *Service) Restore(ctx context.Context, id int64) error {
	if err := s.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("[locations.Restore] Ошибка восстановления локации id=%d: %v", id, err)
		return fmt.Errorf("Restore - repo.Restore: %w", err)
	}

	s.logger.Info("[locations.Restore] Локация восстановлена: id=%d", id)
	return nil
}

// validateTimezone проверяет имя таймзоны через системную базу.
// Пустое имя допустимо: при чтении сработает цепочка фолбэков
func validateTimezone(name string) error {
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
	}
	return nil
}
