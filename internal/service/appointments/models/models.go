package models

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// CreateAppointmentIn данные для создания записи.
// Date и время задаются в опорной таймзоне сайта.
// Пустой EndTime вычисляется из длительности услуги
type CreateAppointmentIn struct {
	ServiceID      int64
	ProviderID     int64
	CustomerID     *int64
	CustomerName   string
	CustomerEmail  *string
	CustomerPhone  *string
	Date           string
	StartTime      string
	EndTime        string
	Status         string
	PaymentStatus  *string
	Notes          *string
	InternalNote   *string
	NotifyCustomer bool
	Recurring      bool
}

// UpdateAppointmentIn данные для частичного обновления записи.
// Nil поля не изменяются
type UpdateAppointmentIn struct {
	ServiceID      *int64
	ProviderID     *int64
	CustomerID     *int64
	CustomerName   *string
	CustomerEmail  *string
	CustomerPhone  *string
	Date           *string
	StartTime      *string
	EndTime        *string
	Status         *string
	PaymentStatus  *string
	Notes          *string
	InternalNote   *string
	NotifyCustomer *bool
	Recurring      *bool
}

// AppointmentPage страница результатов листинга записей
type AppointmentPage struct {
	Items   []*domain.Appointment
	Total   int64
	Page    int
	PerPage int
}
