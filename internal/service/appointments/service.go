package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/servicecatalog"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

// Service сервис управления записями клиентов.
// Дата и время запроса интерпретируются в опорной таймзоне сайта
type Service struct {
	repo         AppointmentRepository
	employeeRepo EmployeeRepository
	catalog      ServiceCatalog
	refZone      *time.Location
	logger       Logger
}

// NewService создает новый сервис записей
func NewService(
	repo AppointmentRepository,
	employeeRepo EmployeeRepository,
	catalog ServiceCatalog,
	refZone *time.Location,
	logger Logger,
) *Service {
	if refZone == nil {
		refZone = time.UTC
	}
	return &Service{
		repo:         repo,
		employeeRepo: employeeRepo,
		catalog:      catalog,
		refZone:      refZone,
		logger:       logger,
	}
}

// Create создает новую запись.
// Пустое время окончания вычисляется из длительности услуги
func (s *Service) Create(ctx context.Context, in models.CreateAppointmentIn) (*domain.Appointment, error) {
	if err := validateEmail(in.CustomerEmail); err != nil {
		return nil, err
	}

	if err := s.checkProvider(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, servicecatalog.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("Create - catalog.GetByID: %w", err)
	}

	start, err := resolveInstant(in.Date, in.StartTime, s.refZone)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if in.EndTime == "" {
		end = start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	} else {
		end, err = resolveInstant(in.Date, in.EndTime, s.refZone)
		if err != nil {
			return nil, err
		}
	}
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ServiceID:      in.ServiceID,
		ProviderID:     in.ProviderID,
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         domain.NormalizeStatus(in.Status),
		Notes:          in.Notes,
		InternalNote:   in.InternalNote,
		NotifyCustomer: in.NotifyCustomer,
		Recurring:      in.Recurring,
	}
	if in.PaymentStatus != nil {
		appt.PaymentStatus = domain.NormalizePaymentStatus(*in.PaymentStatus)
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		s.logger.Error("[appointments.Create] Ошибка создания записи: %v", err)
		return nil, fmt.Errorf("Create - repo.Create: %w", err)
	}

	s.logger.Info("[appointments.Create] Запись создана: id=%d provider=%d service=%d start=%s",
		created.ID, created.ProviderID, created.ServiceID, created.ScheduledStart.Format(time.RFC3339))
	return created, nil
}

// Get получает запись по ID (включая мягко удаленные)
func (s *Service) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("[appointments.Get] Ошибка получения записи id=%d: %v", id, err)
		return nil, fmt.Errorf("Get - repo.GetByID: %w", err)
	}

	return appt, nil
}

// Paginate получает страницу записей с общим количеством
func (s *Service) Paginate(ctx context.Context, filter domain.AppointmentFilter) (*models.AppointmentPage, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("[appointments.Paginate] Ошибка получения списка записей: %v", err)
		return nil, fmt.Errorf("Paginate - repo.List: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("[appointments.Paginate] Ошибка подсчета записей: %v", err)
		return nil, fmt.Errorf("Paginate - repo.Count: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}

	return &models.AppointmentPage{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Update частично обновляет запись.
// Дата и время пересчитываются от текущих значений записи
func (s *Service) Update(ctx context.Context, id int64, in models.UpdateAppointmentIn) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("Update - repo.GetByID: %w", err)
	}

	if in.CustomerEmail != nil {
		if err := validateEmail(in.CustomerEmail); err != nil {
			return nil, err
		}
		appt.CustomerEmail = in.CustomerEmail
	}
	if in.ProviderID != nil {
		if err := s.checkProvider(ctx, *in.ProviderID); err != nil {
			return nil, err
		}
		appt.ProviderID = *in.ProviderID
	}
	if in.ServiceID != nil {
		if _, err := s.catalog.GetByID(ctx, *in.ServiceID); err != nil {
			if errors.Is(err, servicecatalog.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("Update - catalog.GetByID: %w", err)
		}
		appt.ServiceID = *in.ServiceID
	}

	if in.Date != nil || in.StartTime != nil || in.EndTime != nil {
		start, end, err := s.resolvePeriod(appt, in)
		if err != nil {
			return nil, err
		}
		appt.ScheduledStart = start
		appt.ScheduledEnd = end
	}

	if in.CustomerID != nil {
		appt.CustomerID = in.CustomerID
	}
	if in.CustomerName != nil {
		appt.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		appt.CustomerPhone = in.CustomerPhone
	}
	if in.Status != nil {
		appt.Status = domain.NormalizeStatus(*in.Status)
	}
	if in.PaymentStatus != nil {
		appt.PaymentStatus = domain.NormalizePaymentStatus(*in.PaymentStatus)
	}
	if in.Notes != nil {
		appt.Notes = in.Notes
	}
	if in.InternalNote != nil {
		appt.InternalNote = in.InternalNote
	}
	if in.NotifyCustomer != nil {
		appt.NotifyCustomer = *in.NotifyCustomer
	}
	if in.Recurring != nil {
		appt.Recurring = *in.Recurring
	}

	updated, err := s.repo.Update(ctx, id, appt)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("[appointments.Update] Ошибка обновления записи id=%d: %v", id, err)
		return nil, fmt.Errorf("Update - repo.Update: %w", err)
	}

	s.logger.Info("[appointments.Update] Запись обновлена: id=%d", id)
	return updated, nil
}

// Cancel отменяет запись: статус становится canceled, запись помечается удаленной
func (s *Service) Cancel(ctx context.Context, id int64) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("Cancel - repo.GetByID: %w", err)
	}

	appt.Status = domain.StatusCanceled
	if _, err := s.repo.Update(ctx, id, appt); err != nil {
		s.logger.Error("[appointments.Cancel] Ошибка отмены записи id=%d: %v", id, err)
		return fmt.Errorf("Cancel - repo.Update: %w", err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.logger.Error("[appointments.Cancel] Ошибка удаления записи id=%d: %v", id, err)
		return fmt.Errorf("Cancel - repo.SoftDelete: %w", err)
	}

	s.logger.Info("[appointments.Cancel] Запись отменена: id=%d", id)
	return nil
}

// Restore восстанавливает мягко удаленную запись. Статус не меняется
func (s *Service) Restore(ctx context.Context, id int64) error {
	if err := s.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("[appointments.Restore] Ошибка восстановления записи id=%d: %v", id, err)
		return fmt.Errorf("Restore - repo.Restore: %w", err)
	}

	s.logger.Info("[appointments.Restore] Запись восстановлена: id=%d", id)
	return nil
}

// GetForEmployees получает записи набора сотрудников в диапазоне времени.
// Пустой набор сотрудников возвращает пустой список без запроса к БД
func (s *Service) GetForEmployees(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.Appointment, error) {
	if len(providerIDs) == 0 {
		return []*domain.Appointment{}, nil
	}

	appts, err := s.repo.GetByProvidersInRange(ctx, providerIDs, from, to)
	if err != nil {
		s.logger.Error("[appointments.GetForEmployees] Ошибка получения записей: %v", err)
		return nil, fmt.Errorf("GetForEmployees - repo.GetByProvidersInRange: %w", err)
	}

	return appts, nil
}

func (s *Service) checkProvider(ctx context.Context, providerID int64) error {
	emp, err := s.employeeRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return ErrProviderNotFound
		}
		return fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	if emp.IsDeleted {
		return ErrProviderNotFound
	}
	return nil
}

// resolvePeriod пересчитывает интервал записи с учетом частичных изменений
func (s *Service) resolvePeriod(appt *domain.Appointment, in models.UpdateAppointmentIn) (time.Time, time.Time, error) {
	currentStart := appt.ScheduledStart.In(s.refZone)
	currentEnd := appt.ScheduledEnd.In(s.refZone)

	date := currentStart.Format(domain.DateFormat)
	if in.Date != nil {
		date = *in.Date
	}
	startTime := currentStart.Format(domain.TimeFormat)
	if in.StartTime != nil {
		startTime = *in.StartTime
	}
	endTime := currentEnd.Format(domain.TimeFormat)
	if in.EndTime != nil {
		endTime = *in.EndTime
	}

	start, err := resolveInstant(date, startTime, s.refZone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := resolveInstant(date, endTime, s.refZone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := validatePeriod(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
