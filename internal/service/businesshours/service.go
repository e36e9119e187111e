package businesshours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/businesshours/models"
)

// Service сервис управления графиками работы локаций
type Service struct {
	hoursRepo    HoursRepository
	locationRepo LocationRepository
	hoursCache   HoursCache
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый сервис графиков работы
func NewService(
	hoursRepo HoursRepository,
	locationRepo LocationRepository,
	hoursCache HoursCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:    hoursRepo,
		locationRepo: locationRepo,
		hoursCache:   hoursCache,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetLocationHours возвращает полный недельный график локации.
// Дни без сохраненной записи возвращаются как выходные.
// Ошибки кэша не прерывают операцию: график читается из БД
func (s *Service) GetLocationHours(ctx context.Context, locationID int64) (domain.WeeklyHours, error) {
	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("GetLocationHours - locationRepo.GetByID: %w", err)
	}

	if cached, err := s.hoursCache.Get(ctx, locationID); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("[businesshours.GetLocationHours] Ошибка чтения кэша для локации %d: %v", locationID, err)
	}

	rows, err := s.hoursRepo.GetByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("[businesshours.GetLocationHours] Ошибка чтения графика локации %d: %v", locationID, err)
		return nil, fmt.Errorf("GetLocationHours - hoursRepo.GetByLocation: %w", err)
	}

	hours := domain.DefaultWeeklyHours(locationID)
	for _, row := range rows {
		hours[row.Weekday] = *row
	}

	if err := s.hoursCache.Set(ctx, locationID, hours); err != nil {
		s.logger.Warn("[businesshours.GetLocationHours] Ошибка записи кэша для локации %d: %v", locationID, err)
	}

	return hours, nil
}

// SaveLocationHours атомарно заменяет недельный график локации.
// Весь ввод валидируется до первой записи в БД
func (s *Service) SaveLocationHours(ctx context.Context, locationID int64, in models.SaveHoursIn) (domain.WeeklyHours, error) {
	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("SaveLocationHours - locationRepo.GetByID: %w", err)
	}

	// При дублировании дня в запросе последняя запись выигрывает
	byWeekday := make(map[int]*domain.BusinessHour, domain.WeekdayMax)
	for _, day := range in.Days {
		validated, err := validateDay(sanitizeDay(day))
		if err != nil {
			return nil, err
		}
		validated.LocationID = locationID
		byWeekday[validated.Weekday] = validated
	}

	rows := make([]*domain.BusinessHour, 0, len(byWeekday))
	for _, row := range byWeekday {
		rows = append(rows, row)
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.hoursRepo.ReplaceForLocation(ctx, locationID, rows)
	})
	if err != nil {
		s.logger.Error("[businesshours.SaveLocationHours] Ошибка сохранения графика локации %d: %v", locationID, err)
		return nil, fmt.Errorf("SaveLocationHours - ReplaceForLocation: %w", err)
	}

	if err := s.hoursCache.Invalidate(ctx, locationID); err != nil {
		s.logger.Warn("[businesshours.SaveLocationHours] Ошибка инвалидации кэша для локации %d: %v", locationID, err)
	}

	hours := domain.DefaultWeeklyHours(locationID)
	for weekday, row := range byWeekday {
		hours[weekday] = *row
	}

	s.logger.Info("[businesshours.SaveLocationHours] График локации %d обновлен", locationID)
	return hours, nil
}
