package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// EmployeeVisibility controls whether an employee is shown on public surfaces
type EmployeeVisibility string

const (
	VisibilityPublic   EmployeeVisibility = "public"
	VisibilityPrivate  EmployeeVisibility = "private"
	VisibilityArchived EmployeeVisibility = "archived"
)

// ValidVisibilities allow-list of employee visibility states
var ValidVisibilities = []EmployeeVisibility{
	VisibilityPublic,
	VisibilityPrivate,
	VisibilityArchived,
}

// IsValidVisibility reports whether v is in the allow-list
func IsValidVisibility(v EmployeeVisibility) bool {
	for _, valid := range ValidVisibilities {
		if v == valid {
			return true
		}
	}
	return false
}

// EmployeeService is a service assignment of an employee, with an optional
// price override and a display order
type EmployeeService struct {
	ServiceID int64
	SortOrder int
	Price     *float64 // nil = use the catalog price
}

// ScheduleBreak is a break interval nested inside a working day.
// Invariant: End > Start and both fall within the day's working window.
type ScheduleBreak struct {
	Start types.TimeString
	End   types.TimeString
}

// ScheduleDay is one day of an employee's weekly working schedule
type ScheduleDay struct {
	Weekday   int // ISO weekday, Monday=1 .. Sunday=7
	IsWorking bool
	Start     *types.TimeString
	End       *types.TimeString
	Breaks    []ScheduleBreak
}

// WeeklySchedule is a full 7-day working schedule keyed by ISO weekday
type WeeklySchedule map[int]ScheduleDay

// Employee represents a staff member who provides services at locations
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Visibility EmployeeVisibility

	// Assignments, fully replaced on every update
	LocationIDs []int64
	Services    []EmployeeService
	Schedule    WeeklySchedule

	IsDeleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssignedTo returns true if the employee is assigned to the location
func (e *Employee) IsAssignedTo(locationID int64) bool {
	for _, id := range e.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}
