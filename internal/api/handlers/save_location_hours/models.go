package save_location_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/businesshours/models"
)

// DayHoursRequest график одного дня недели
type DayHoursRequest struct {
	Weekday   int     `json:"weekday"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsClosed  bool    `json:"isClosed"`
}

// SaveHoursRequest HTTP request model.
// Дни, отсутствующие в списке, становятся выходными
type SaveHoursRequest struct {
	Days []DayHoursRequest `json:"days"`
}

// DayHoursResponse график одного дня недели
type DayHoursResponse struct {
	Weekday   int     `json:"weekday"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsClosed  bool    `json:"isClosed"`
}

// WeeklyHoursResponse HTTP response model
type WeeklyHoursResponse struct {
	LocationID int64              `json:"locationId"`
	Days       []DayHoursResponse `json:"days"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *SaveHoursRequest) ToServiceInput() models.SaveHoursIn {
	days := make([]models.DayHoursIn, 0, len(r.Days))
	for _, day := range r.Days {
		days = append(days, models.DayHoursIn{
			Weekday:   day.Weekday,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
			IsClosed:  day.IsClosed,
		})
	}
	return models.SaveHoursIn{Days: days}
}

// FromDomain конвертирует недельный график в HTTP response
func FromDomain(locationID int64, hours domain.WeeklyHours) *WeeklyHoursResponse {
	days := make([]DayHoursResponse, 0, domain.WeekdayMax)
	for weekday := domain.WeekdayMin; weekday <= domain.WeekdayMax; weekday++ {
		day := hours[weekday]
		resp := DayHoursResponse{
			Weekday:  weekday,
			IsClosed: day.IsClosed,
		}
		if day.OpenTime != nil {
			open := day.OpenTime.String()
			resp.OpenTime = &open
		}
		if day.CloseTime != nil {
			closeAt := day.CloseTime.String()
			resp.CloseTime = &closeAt
		}
		days = append(days, resp)
	}
	return &WeeklyHoursResponse{LocationID: locationID, Days: days}
}
