package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	ServiceID      int64   `json:"serviceId"`
	ProviderID     int64   `json:"providerId"`
	CustomerID     *int64  `json:"customerId,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	CustomerPhone  *string `json:"customerPhone,omitempty"`
	ScheduledStart string  `json:"scheduledStart"`
	ScheduledEnd   string  `json:"scheduledEnd"`
	Status         string  `json:"status"`
	PaymentStatus  *string `json:"paymentStatus,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	InternalNote   *string `json:"internalNote,omitempty"`
	NotifyCustomer bool    `json:"notifyCustomer"`
	Recurring      bool    `json:"recurring"`
	IsDeleted      bool    `json:"isDeleted"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную запись в HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:             appt.ID,
		ServiceID:      appt.ServiceID,
		ProviderID:     appt.ProviderID,
		CustomerID:     appt.CustomerID,
		CustomerName:   appt.CustomerName,
		CustomerEmail:  appt.CustomerEmail,
		CustomerPhone:  appt.CustomerPhone,
		ScheduledStart: appt.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:   appt.ScheduledEnd.Format(time.RFC3339),
		Status:         string(appt.Status),
		Notes:          appt.Notes,
		InternalNote:   appt.InternalNote,
		NotifyCustomer: appt.NotifyCustomer,
		Recurring:      appt.Recurring,
		IsDeleted:      appt.IsDeleted,
		CreatedAt:      appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      appt.UpdatedAt.Format(time.RFC3339),
	}
	if appt.PaymentStatus != nil {
		status := string(*appt.PaymentStatus)
		resp.PaymentStatus = &status
	}
	return resp
}
