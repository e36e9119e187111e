package businesshours

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// sanitizeDay нормализует график одного дня перед валидацией.
// День без времени и без явного флага закрытия трактуется как выходной
func sanitizeDay(day models.DayHoursIn) models.DayHoursIn {
	if day.OpenTime == nil && day.CloseTime == nil {
		day.IsClosed = true
	}
	return day
}

// validateDay проверяет график одного дня недели
func validateDay(day models.DayHoursIn) (*domain.BusinessHour, error) {
	if day.Weekday < domain.WeekdayMin || day.Weekday > domain.WeekdayMax {
		return nil, fmt.Errorf("%w: weekday=%d", ErrInvalidWeekday, day.Weekday)
	}

	if day.IsClosed {
		return &domain.BusinessHour{Weekday: day.Weekday, IsClosed: true}, nil
	}

	// Рабочий день: обе границы обязательны
	if day.OpenTime == nil || day.CloseTime == nil {
		return nil, fmt.Errorf("%w: weekday=%d", ErrMissingTime, day.Weekday)
	}

	open, err := parseGridTime(*day.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d open=%q", ErrInvalidTime, day.Weekday, *day.OpenTime)
	}
	closeAt, err := parseGridTime(*day.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d close=%q", ErrInvalidTime, day.Weekday, *day.CloseTime)
	}

	if !open.IsBefore(closeAt) {
		return nil, fmt.Errorf("%w: weekday=%d %s >= %s", ErrOrderViolation, day.Weekday, open, closeAt)
	}

	return &domain.BusinessHour{
		Weekday:   day.Weekday,
		OpenTime:  &open,
		CloseTime: &closeAt,
	}, nil
}

// parseGridTime разбирает HH:MM и проверяет выравнивание по сетке 15 минут
func parseGridTime(raw string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", err
	}
	if !ts.AlignedTo(domain.TimeGridMinutes) {
		return "", fmt.Errorf("time %q is not aligned to %d-minute grid", raw, domain.TimeGridMinutes)
	}
	return ts, nil
}
