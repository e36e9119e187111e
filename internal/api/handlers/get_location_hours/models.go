package get_location_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

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

// FromDomain конвертирует недельный график в HTTP response.
// Дни идут по порядку с понедельника
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
