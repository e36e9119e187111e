package get_daily_schedule

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена или удалена
	ErrLocationNotFound = errors.New("get_daily_schedule.usecase: location not found")

	// ErrInvalidDate возвращается при неверном формате даты
	ErrInvalidDate = errors.New("get_daily_schedule.usecase: invalid date value")
)
