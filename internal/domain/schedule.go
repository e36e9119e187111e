package domain

import "time"

// DailySchedule is the computed calendar aggregate for one location on one
// date. It is built fresh on every request and never persisted.
type DailySchedule struct {
	Location *Location

	// Date is the requested day re-expressed in the resolved zone (midnight)
	Date time.Time

	// Timezone actually used for the day, and whether the location's own zone
	// had to be replaced by a fallback
	Timezone         string
	TimezoneFallback bool

	IsClosed bool

	// Resolved open/close instants; zero values when the day is closed
	OpensAt  time.Time
	ClosesAt time.Time

	// Slots ordered sequence of slot start instants between open and close
	Slots               []time.Time
	SlotDurationMinutes int

	// Employees assigned to the location (may be empty)
	Employees []*Employee

	// Appointments whose start falls on the requested day
	Appointments []*Appointment

	// WindowAppointments everything fetched in the padded query window,
	// kept for client-side recurring-event rendering
	WindowAppointments []*Appointment
}
