package list_locations

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

// ListLocationsResponse HTTP response model
type ListLocationsResponse struct {
	Locations []*LocationResponse `json:"locations"`
}

// FromDomainList конвертирует список локаций в HTTP response
func FromDomainList(locs []*domain.Location) *ListLocationsResponse {
	items := make([]*LocationResponse, 0, len(locs))
	for _, loc := range locs {
		items = append(items, &LocationResponse{
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
		})
	}
	return &ListLocationsResponse{Locations: items}
}
