package businesshours

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("businesshours.service: location not found")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 1..7
	ErrInvalidWeekday = errors.New("businesshours.service: weekday out of range")

	// ErrInvalidTime возвращается при неверном формате времени или нарушении сетки
	ErrInvalidTime = errors.New("businesshours.service: invalid time value")

	// ErrMissingTime возвращается, когда задана только одна граница интервала
	ErrMissingTime = errors.New("businesshours.service: open and close must be set together")

	// ErrOrderViolation возвращается, когда закрытие не позже открытия
	ErrOrderViolation = errors.New("businesshours.service: close time must be after open time")
)
