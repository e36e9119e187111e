package get_daily_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// dayWindow вычисляет окно открытия и закрытия дня в таймзоне локации.
// Поврежденная запись дня (нет времени, неразбираемое время, закрытие не
// позже открытия) не валит агрегацию: применяется страховочное окно
// 08:00-18:00
func dayWindow(day domain.BusinessHour, date time.Time, zone *time.Location) (open, closeAt time.Time, degraded bool) {
	openTS, closeTS := day.OpenTime, day.CloseTime
	if !validWindow(openTS, closeTS) {
		fallbackOpen := types.TimeString(domain.FallbackOpenTime)
		fallbackClose := types.TimeString(domain.FallbackCloseTime)
		openTS, closeTS = &fallbackOpen, &fallbackClose
		degraded = true
	}

	// Границы уже проверены, ошибка разбора здесь невозможна
	open, _ = openTS.OnDate(date, zone)
	closeAt, _ = closeTS.OnDate(date, zone)

	return open, closeAt, degraded
}

// validWindow проверяет, что обе границы заданы, разбираются и упорядочены
func validWindow(open, closeAt *types.TimeString) bool {
	if open == nil || closeAt == nil {
		return false
	}
	if open.Validate() != nil || closeAt.Validate() != nil {
		return false
	}
	return open.IsBefore(*closeAt)
}

// generateSlots строит последовательность стартов слотов между открытием и
// закрытием. Слот попадает в список, только если целиком помещается до закрытия
func generateSlots(open, closeAt time.Time, slotMinutes int) []time.Time {
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotDurationMinutes
	}

	step := time.Duration(slotMinutes) * time.Minute
	slots := make([]time.Time, 0)
	for start := open; !start.Add(step).After(closeAt); start = start.Add(step) {
		slots = append(slots, start)
	}

	return slots
}

// paddedWindow возвращает расширенное окно выборки записей вокруг даты.
// Запас по неделе в обе стороны нужен для отрисовки повторяющихся событий
func paddedWindow(date time.Time) (from, to time.Time) {
	from = date.AddDate(0, 0, -domain.ScheduleWindowPaddingDays)
	to = date.AddDate(0, 0, domain.ScheduleWindowPaddingDays+1)
	return from, to
}
