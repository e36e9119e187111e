package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgProviderNotFound     = "исполнитель не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPeriod        = "окончание должно быть позже начала"
	msgInvalidEmail         = "некорректный адрес почты клиента"
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

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appt, err := h.service.Update(r.Context(), appointmentID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrProviderNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Provider not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, appointmentsService.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidDate):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid date: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, appointmentsService.ErrInvalidTime):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid time: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, appointmentsService.ErrInvalidPeriod):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid period: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, appointmentsService.ErrInvalidEmail):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid email: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("PUT /appointments/{appointmentId} - Failed to update appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{appointmentId} - Appointment updated: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(appt))
}
