package get_location

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

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
