package list_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	msgInvalidProviderID = "некорректный providerId"
	msgInvalidServiceID  = "некорректный serviceId"
	msgInvalidFrom       = "некорректный параметр from"
	msgInvalidTo         = "некорректный параметр to"
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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.AppointmentFilter{
		IncludeDeleted: query.Get("includeDeleted") == "true",
		OnlyDeleted:    query.Get("onlyDeleted") == "true",
	}

	if raw := query.Get("providerId"); raw != "" {
		providerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid provider ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidProviderID)
			return
		}
		filter.ProviderID = &providerID
	}

	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid service ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		filter.ServiceID = &serviceID
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.NormalizeStatus(raw)
		filter.Status = &status
	}

	if raw := query.Get("from"); raw != "" {
		from, err := parseInstant(raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid from: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := parseInstant(raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid to: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		filter.To = &to
	}

	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PerPage, _ = strconv.Atoi(query.Get("perPage"))

	page, err := h.service.Paginate(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServicePage(page))
}

// parseInstant принимает RFC3339 или дату YYYY-MM-DD
func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, raw)
}
