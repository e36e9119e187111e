package domain

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultTimezoneName        = "Europe/Budapest"
)

// Business hours validation constants
const (
	// TimeGridMinutes granularity the open/close times must align to
	TimeGridMinutes = 15

	// FallbackOpenTime / FallbackCloseTime substitute window used when a stored
	// business-hours entry turns out to be malformed at aggregation time
	FallbackOpenTime  = "08:00"
	FallbackCloseTime = "18:00"
)

// Calendar aggregation constants
const (
	// ScheduleWindowPaddingDays how far the appointment query window extends
	// beyond the requested day on each side (recurring-appointment rendering
	// needs the neighbouring occurrences)
	ScheduleWindowPaddingDays = 7
)

// ISO weekday bounds (Monday=1 .. Sunday=7)
const (
	WeekdayMin = 1
	WeekdayMax = 7
)
