package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// BusinessHour is one day-of-week entry of a location's weekly template.
// Invariant: if IsClosed, OpenTime and CloseTime are nil; otherwise both are
// set and CloseTime > OpenTime.
type BusinessHour struct {
	LocationID int64
	Weekday    int // ISO weekday, Monday=1 .. Sunday=7
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString
	IsClosed   bool
}

// HasHours returns true if both open and close times are present
func (h BusinessHour) HasHours() bool {
	return h.OpenTime != nil && h.CloseTime != nil
}

// IsOpen returns true if the day is bookable
func (h BusinessHour) IsOpen() bool {
	return !h.IsClosed && h.HasHours()
}

// WeeklyHours is a full 7-day template keyed by ISO weekday
type WeeklyHours map[int]BusinessHour

// DefaultWeeklyHours returns a template with every day closed.
// Used when nothing is stored for a location yet.
func DefaultWeeklyHours(locationID int64) WeeklyHours {
	hours := make(WeeklyHours, WeekdayMax)
	for day := WeekdayMin; day <= WeekdayMax; day++ {
		hours[day] = BusinessHour{
			LocationID: locationID,
			Weekday:    day,
			IsClosed:   true,
		}
	}
	return hours
}
