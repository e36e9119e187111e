package get_employee

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// EnrichedServiceResponse услуга сотрудника с данными каталога
type EnrichedServiceResponse struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	SortOrder       int     `json:"sortOrder"`
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
	Services    []EnrichedServiceResponse `json:"services"`
	Schedule    []ScheduleDayResponse     `json:"schedule"`
	IsDeleted   bool                      `json:"isDeleted"`
	CreatedAt   string                    `json:"createdAt"`
	UpdatedAt   string                    `json:"updatedAt"`
}

// FromDomain конвертирует сотрудника с обогащенными услугами в HTTP response
func FromDomain(emp *domain.Employee, enriched []models.EnrichedService) *EmployeeResponse {
	services := make([]EnrichedServiceResponse, 0, len(enriched))
	for _, svc := range enriched {
		services = append(services, EnrichedServiceResponse{
			ServiceID:       svc.ServiceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			SortOrder:       svc.SortOrder,
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
