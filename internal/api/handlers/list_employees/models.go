package list_employees

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// EmployeeServiceResponse назначение услуги сотруднику
type EmployeeServiceResponse struct {
	ServiceID int64    `json:"serviceId"`
	SortOrder int      `json:"sortOrder"`
	Price     *float64 `json:"price,omitempty"`
}

// EmployeeResponse элемент списка сотрудников
type EmployeeResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email,omitempty"`
	Phone       string                    `json:"phone,omitempty"`
	Visibility  string                    `json:"visibility"`
	LocationIDs []int64                   `json:"locationIds"`
	Services    []EmployeeServiceResponse `json:"services"`
	IsDeleted   bool                      `json:"isDeleted"`
	CreatedAt   string                    `json:"createdAt"`
	UpdatedAt   string                    `json:"updatedAt"`
}

// ListEmployeesResponse HTTP response model
type ListEmployeesResponse struct {
	Employees []*EmployeeResponse `json:"employees"`
}

// FromDomainList конвертирует список сотрудников в HTTP response
func FromDomainList(emps []*domain.Employee) *ListEmployeesResponse {
	items := make([]*EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		services := make([]EmployeeServiceResponse, 0, len(emp.Services))
		for _, svc := range emp.Services {
			services = append(services, EmployeeServiceResponse{
				ServiceID: svc.ServiceID,
				SortOrder: svc.SortOrder,
				Price:     svc.Price,
			})
		}

		locationIDs := emp.LocationIDs
		if locationIDs == nil {
			locationIDs = []int64{}
		}

		items = append(items, &EmployeeResponse{
			ID:          emp.ID,
			Name:        emp.Name,
			Email:       emp.Email,
			Phone:       emp.Phone,
			Visibility:  string(emp.Visibility),
			LocationIDs: locationIDs,
			Services:    services,
			IsDeleted:   emp.IsDeleted,
			CreatedAt:   emp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   emp.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &ListEmployeesResponse{Employees: items}
}
