package update_employee

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// EmployeeServiceRequest назначение услуги сотруднику
type EmployeeServiceRequest struct {
	ServiceID int64    `json:"serviceId"`
	SortOrder int      `json:"sortOrder"`
	Price     *float64 `json:"price,omitempty"`
}

// ScheduleBreakRequest перерыв внутри рабочего дня
type ScheduleBreakRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleDayRequest рабочий график одного дня недели
type ScheduleDayRequest struct {
	Weekday   int                    `json:"weekday"`
	IsWorking bool                   `json:"isWorking"`
	Start     *string                `json:"start,omitempty"`
	End       *string                `json:"end,omitempty"`
	Breaks    []ScheduleBreakRequest `json:"breaks,omitempty"`
}

// UpdateEmployeeRequest HTTP request model.
// Nil поля и отсутствующие срезы не изменяются
type UpdateEmployeeRequest struct {
	Name        *string                  `json:"name,omitempty"`
	Email       *string                  `json:"email,omitempty"`
	Phone       *string                  `json:"phone,omitempty"`
	Visibility  *string                  `json:"visibility,omitempty"`
	LocationIDs []int64                  `json:"locationIds,omitempty"`
	Services    []EmployeeServiceRequest `json:"services,omitempty"`
	Schedule    []ScheduleDayRequest     `json:"schedule,omitempty"`
}

// EmployeeServiceResponse назначение услуги сотруднику
type EmployeeServiceResponse struct {
	ServiceID int64    `json:"serviceId"`
	SortOrder int      `json:"sortOrder"`
	Price     *float64 `json:"price,omitempty"`
}

// ScheduleBreakResponse перерыв внутри рабочего дня
type ScheduleBreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleDayResponse рабочий график одного дня недели
type ScheduleDayResponse struct {
	Weekday   int                     `json:"weekday"`
	IsWorking bool                    `json:"isWorking"`
	Start     *string                 `json:"start,omitempty"`
	End       *string                 `json:"end,omitempty"`
	Breaks    []ScheduleBreakResponse `json:"breaks,omitempty"`
}

// EmployeeResponse HTTP response model
type EmployeeResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email,omitempty"`
	Phone       string                    `json:"phone,omitempty"`
	Visibility  string                    `json:"visibility"`
	LocationIDs []int64                   `json:"locationIds"`
	Services    []EmployeeServiceResponse `json:"services"`
	Schedule    []ScheduleDayResponse     `json:"schedule"`
	IsDeleted   bool                      `json:"isDeleted"`
	CreatedAt   string                    `json:"createdAt"`
	UpdatedAt   string                    `json:"updatedAt"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *UpdateEmployeeRequest) ToServiceInput() models.UpdateEmployeeIn {
	in := models.UpdateEmployeeIn{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Visibility:  r.Visibility,
		LocationIDs: r.LocationIDs,
	}

	if r.Services != nil {
		services := make([]models.EmployeeServiceIn, 0, len(r.Services))
		for _, svc := range r.Services {
			services = append(services, models.EmployeeServiceIn{
				ServiceID: svc.ServiceID,
				SortOrder: svc.SortOrder,
				Price:     svc.Price,
			})
		}
		in.Services = services
	}

	if r.Schedule != nil {
		days := make([]models.ScheduleDayIn, 0, len(r.Schedule))
		for _, day := range r.Schedule {
			breaks := make([]models.ScheduleBreakIn, 0, len(day.Breaks))
			for _, brk := range day.Breaks {
				breaks = append(breaks, models.ScheduleBreakIn{Start: brk.Start, End: brk.End})
			}
			days = append(days, models.ScheduleDayIn{
				Weekday:   day.Weekday,
				IsWorking: day.IsWorking,
				Start:     day.Start,
				End:       day.End,
				Breaks:    breaks,
			})
		}
		in.Schedule = days
	}

	return in
}

// FromDomain конвертирует доменного сотрудника в HTTP response
func FromDomain(emp *domain.Employee) *EmployeeResponse {
	services := make([]EmployeeServiceResponse, 0, len(emp.Services))
	for _, svc := range emp.Services {
		services = append(services, EmployeeServiceResponse{
			ServiceID: svc.ServiceID,
			SortOrder: svc.SortOrder,
			Price:     svc.Price,
		})
	}

	schedule := make([]ScheduleDayResponse, 0, domain.WeekdayMax)
	for weekday := domain.WeekdayMin; weekday <= domain.WeekdayMax; weekday++ {
		day := emp.Schedule[weekday]
		resp := ScheduleDayResponse{
			Weekday:   weekday,
			IsWorking: day.IsWorking,
		}
		if day.Start != nil {
			start := day.Start.String()
			resp.Start = &start
		}
		if day.End != nil {
			end := day.End.String()
			resp.End = &end
		}
		for _, brk := range day.Breaks {
			resp.Breaks = append(resp.Breaks, ScheduleBreakResponse{
				Start: brk.Start.String(),
				End:   brk.End.String(),
			})
		}
		schedule = append(schedule, resp)
	}

	locationIDs := emp.LocationIDs
	if locationIDs == nil {
		locationIDs = []int64{}
	}

	return &EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Email:       emp.Email,
		Phone:       emp.Phone,
		Visibility:  string(emp.Visibility),
		LocationIDs: locationIDs,
		Services:    services,
		Schedule:    schedule,
		IsDeleted:   emp.IsDeleted,
		CreatedAt:   emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   emp.UpdatedAt.Format(time.RFC3339),
	}
}
