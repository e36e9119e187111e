package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyCustomerName  = "имя клиента не может быть пустым"
	msgProviderNotFound   = "исполнитель не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPeriod      = "окончание должно быть позже начала"
	msgInvalidEmail       = "некорректный адрес почты клиента"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CustomerName == "" {
		h.logger.Warn("POST /appointments - Empty customer name")
		handlers.RespondBadRequest(w, msgEmptyCustomerName)
		return
	}

	appt, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrProviderNotFound):
			h.logger.Warn("POST /appointments - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, appointmentsService.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, appointmentsService.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: start=%q end=%q", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, appointmentsService.ErrInvalidPeriod):
			h.logger.Warn("POST /appointments - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, appointmentsService.ErrInvalidEmail):
			h.logger.Warn("POST /appointments - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: provider_id=%d, error=%v", req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, provider_id=%d", appt.ID, appt.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(appt))
}
