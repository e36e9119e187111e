package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("appointments.service: provider not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("appointments.service: service not found")

	// ErrInvalidDate возвращается при неверном формате даты
	ErrInvalidDate = errors.New("appointments.service: invalid date value")

	// ErrInvalidTime возвращается при неверном формате времени
	ErrInvalidTime = errors.New("appointments.service: invalid time value")

	// ErrInvalidPeriod возвращается, когда окончание не позже начала
	ErrInvalidPeriod = errors.New("appointments.service: end must be after start")

	// ErrInvalidEmail возвращается при некорректном адресе почты клиента
	ErrInvalidEmail = errors.New("appointments.service: invalid customer email")
)
