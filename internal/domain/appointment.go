package domain

import "time"

// AppointmentStatus represents the status of an appointment.
//
// The implied lifecycle is pending -> {confirmed, canceled},
// confirmed -> {completed, canceled}, with completed and canceled terminal.
// Transitions are deliberately not guarded: an update payload may set any
// allow-listed status, which lets administrators correct mis-closed records.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ValidStatuses allow-list of appointment statuses
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
}

// NormalizeStatus maps an arbitrary input to the status allow-list.
// Unrecognized values normalize to pending rather than failing validation.
func NormalizeStatus(s string) AppointmentStatus {
	candidate := AppointmentStatus(s)
	for _, valid := range ValidStatuses {
		if candidate == valid {
			return candidate
		}
	}
	return StatusPending
}

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentNotPaid       PaymentStatus = "not_paid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

// ValidPaymentStatuses allow-list of payment statuses
var ValidPaymentStatuses = []PaymentStatus{
	PaymentNotPaid,
	PaymentPartiallyPaid,
	PaymentPaid,
	PaymentRefunded,
}

// NormalizePaymentStatus maps an arbitrary input to the payment allow-list.
// Unrecognized or empty values normalize to nil (no payment state recorded).
func NormalizePaymentStatus(s string) *PaymentStatus {
	candidate := PaymentStatus(s)
	for _, valid := range ValidPaymentStatuses {
		if candidate == valid {
			return &candidate
		}
	}
	return nil
}

// Appointment represents a scheduled booking of a service with a provider.
// Invariant: ScheduledEnd > ScheduledStart. Never hard-deleted.
type Appointment struct {
	ID         int64
	ServiceID  int64
	ProviderID int64 // employee performing the service

	// Customer contact snapshot, denormalized for history
	CustomerID    *int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string

	ScheduledStart time.Time
	ScheduledEnd   time.Time

	Status         AppointmentStatus
	PaymentStatus  *PaymentStatus
	Notes          *string
	InternalNote   *string
	NotifyCustomer bool
	Recurring      bool

	IsDeleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCanceled returns true if the appointment has been canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// StartsOn returns true if the appointment's start instant, reinterpreted in
// loc, falls on the given calendar date
func (a *Appointment) StartsOn(date time.Time, loc *time.Location) bool {
	localStart := a.ScheduledStart.In(loc)
	y1, m1, d1 := localStart.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AppointmentFilter flexible filter for paginated appointment listings
type AppointmentFilter struct {
	ProviderID *int64
	ServiceID  *int64
	Status     *AppointmentStatus
	From       *time.Time // inclusive lower bound on scheduled_start
	To         *time.Time // inclusive upper bound on scheduled_start

	IncludeDeleted bool
	OnlyDeleted    bool

	Page    int // 1-based, 0 means first page
	PerPage int // 0 means default page size
}

// DefaultPerPage page size applied when the filter does not set one
const DefaultPerPage = 50
