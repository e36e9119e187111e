package get_daily_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// EmployeeResponse сотрудник в составе календаря
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
}

// AppointmentResponse запись в составе календаря
type AppointmentResponse struct {
	ID             int64  `json:"id"`
	ServiceID      int64  `json:"serviceId"`
	ProviderID     int64  `json:"providerId"`
	CustomerName   string `json:"customerName"`
	ScheduledStart string `json:"scheduledStart"`
	ScheduledEnd   string `json:"scheduledEnd"`
	Status         string `json:"status"`
	Recurring      bool   `json:"recurring"`
}

// DailyScheduleResponse HTTP response model
type DailyScheduleResponse struct {
	LocationID          int64                  `json:"locationId"`
	LocationName        string                 `json:"locationName"`
	Date                string                 `json:"date"`
	Timezone            string                 `json:"timezone"`
	TimezoneFallback    bool                   `json:"timezoneFallback"`
	IsClosed            bool                   `json:"isClosed"`
	OpensAt             *string                `json:"opensAt,omitempty"`
	ClosesAt            *string                `json:"closesAt,omitempty"`
	Slots               []string               `json:"slots"`
	SlotDurationMinutes int                    `json:"slotDurationMinutes"`
	Employees           []*EmployeeResponse    `json:"employees"`
	Appointments        []*AppointmentResponse `json:"appointments"`
	WindowAppointments  []*AppointmentResponse `json:"windowAppointments"`
}

// FromDomain конвертирует дневной календарь в HTTP response
func FromDomain(schedule *domain.DailySchedule) *DailyScheduleResponse {
	resp := &DailyScheduleResponse{
		LocationID:          schedule.Location.ID,
		LocationName:        schedule.Location.Name,
		Date:                schedule.Date.Format(domain.DateFormat),
		Timezone:            schedule.Timezone,
		TimezoneFallback:    schedule.TimezoneFallback,
		IsClosed:            schedule.IsClosed,
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		Slots:               make([]string, 0, len(schedule.Slots)),
		Employees:           make([]*EmployeeResponse, 0, len(schedule.Employees)),
		Appointments:        make([]*AppointmentResponse, 0, len(schedule.Appointments)),
		WindowAppointments:  make([]*AppointmentResponse, 0, len(schedule.WindowAppointments)),
	}

	if !schedule.IsClosed {
		opensAt := schedule.OpensAt.Format(time.RFC3339)
		closesAt := schedule.ClosesAt.Format(time.RFC3339)
		resp.OpensAt = &opensAt
		resp.ClosesAt = &closesAt
	}

	for _, slot := range schedule.Slots {
		resp.Slots = append(resp.Slots, slot.Format(time.RFC3339))
	}

	for _, emp := range schedule.Employees {
		resp.Employees = append(resp.Employees, &EmployeeResponse{
			ID:         emp.ID,
			Name:       emp.Name,
			Visibility: string(emp.Visibility),
		})
	}

	for _, appt := range schedule.Appointments {
		resp.Appointments = append(resp.Appointments, fromAppointment(appt))
	}
	for _, appt := range schedule.WindowAppointments {
		resp.WindowAppointments = append(resp.WindowAppointments, fromAppointment(appt))
	}

	return resp
}

func fromAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             appt.ID,
		ServiceID:      appt.ServiceID,
		ProviderID:     appt.ProviderID,
		CustomerName:   appt.CustomerName,
		ScheduledStart: appt.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:   appt.ScheduledEnd.Format(time.RFC3339),
		Status:         string(appt.Status),
		Recurring:      appt.Recurring,
	}
}
