package employees

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employees.service: employee not found")

	// ErrInvalidVisibility возвращается при неизвестном значении видимости
	ErrInvalidVisibility = errors.New("employees.service: invalid visibility value")

	// ErrInvalidSchedule возвращается при противоречивом рабочем графике
	ErrInvalidSchedule = errors.New("employees.service: invalid schedule day")

	// ErrInvalidScheduleBreak возвращается, когда перерыв выходит за рабочий интервал
	ErrInvalidScheduleBreak = errors.New("employees.service: invalid schedule break")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 1..7
	ErrInvalidWeekday = errors.New("employees.service: weekday out of range")
)
