package appointments

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// resolveInstant собирает момент времени из даты и HH:MM в опорной таймзоне
func resolveInstant(date, hhmm string, zone *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, date, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	ts, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	instant, err := ts.OnDate(day, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	return instant, nil
}

// validatePeriod проверяет, что окончание строго позже начала
func validatePeriod(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidPeriod, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

// validateEmail проверяет адрес почты клиента. Nil и пустая строка допустимы
func validateEmail(email *string) error {
	if email == nil || *email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(*email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, *email)
	}
	return nil
}
