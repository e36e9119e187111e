package update_location

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/locations/models"
)

// UpdateLocationRequest HTTP request model. Nil поля не изменяются
type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Industry *string `json:"industry,omitempty"`
}

// LocationResponse HTTP response model
type LocationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	Industry  string `json:"industry,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *UpdateLocationRequest) ToServiceInput() models.UpdateLocationIn {
	return models.UpdateLocationIn{
		Name:     r.Name,
		Address:  r.Address,
		City:     r.City,
		Phone:    r.Phone,
		Email:    r.Email,
		Timezone: r.Timezone,
		Industry: r.Industry,
	}
}

// FromDomain конвертирует доменную локацию в HTTP response
func FromDomain(loc *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		Address:   loc.Address,
		City:      loc.City,
		Phone:     loc.Phone,
		Email:     loc.Email,
		Timezone:  loc.Timezone,
		Industry:  loc.Industry,
		IsDeleted: loc.IsDeleted,
		CreatedAt: loc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: loc.UpdatedAt.Format(time.RFC3339),
	}
}
