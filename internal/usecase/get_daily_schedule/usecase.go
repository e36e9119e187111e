package get_daily_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/locations"
)

// UseCase агрегатор дневного календаря локации.
// Собирает график, сотрудников и записи в один ответ без записи в БД
type UseCase struct {
	locations       LocationProvider
	hours           HoursProvider
	employees       EmployeeDirectory
	appointments    AppointmentProvider
	defaultTimezone string
	slotMinutes     int
	logger          Logger
}

// NewUseCase создает агрегатор дневного календаря
func NewUseCase(
	locationProvider LocationProvider,
	hoursProvider HoursProvider,
	employeeDirectory EmployeeDirectory,
	appointmentProvider AppointmentProvider,
	defaultTimezone string,
	slotMinutes int,
	logger Logger,
) *UseCase {
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultTimezoneName
	}
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotDurationMinutes
	}
	return &UseCase{
		locations:       locationProvider,
		hours:           hoursProvider,
		employees:       employeeDirectory,
		appointments:    appointmentProvider,
		defaultTimezone: defaultTimezone,
		slotMinutes:     slotMinutes,
		logger:          logger,
	}
}

// Execute собирает дневной календарь локации на дату.
// Повторные вызовы с теми же аргументами дают одинаковый результат
func (u *UseCase) Execute(ctx context.Context, in In) (*domain.DailySchedule, error) {
	// 1. Локация: удаленная локация календаря не имеет
	loc, err := u.locations.Get(ctx, in.LocationID)
	if err != nil {
		if errors.Is(err, locations.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("Execute - locations.Get: %w", err)
	}
	if loc.IsDeleted {
		return nil, ErrLocationNotFound
	}

	// 2. Таймзона: локация, затем зона сайта, затем UTC
	zone, fallback := domain.ResolveTimezone(loc.Timezone, u.defaultTimezone)
	if fallback {
		u.logger.Warn("[get_daily_schedule] Таймзона %q локации %d не распознана, используется %s",
			loc.Timezone, loc.ID, zone.String())
	}

	date, err := time.ParseInLocation(domain.DateFormat, in.Date, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	// 3. Недельный график локации
	weekly, err := u.hours.GetLocationHours(ctx, in.LocationID)
	if err != nil {
		return nil, fmt.Errorf("Execute - hours.GetLocationHours: %w", err)
	}

	// 4. Сотрудники локации
	employees, err := u.employees.ListByLocation(ctx, in.LocationID)
	if err != nil {
		return nil, fmt.Errorf("Execute - employees.ListByLocation: %w", err)
	}

	// 5. Записи в расширенном окне вокруг даты
	providerIDs := make([]int64, 0, len(employees))
	for _, emp := range employees {
		providerIDs = append(providerIDs, emp.ID)
	}
	from, to := paddedWindow(date)
	windowAppointments, err := u.appointments.GetForEmployees(ctx, providerIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("Execute - appointments.GetForEmployees: %w", err)
	}

	dayAppointments := make([]*domain.Appointment, 0, len(windowAppointments))
	for _, appt := range windowAppointments {
		if appt.StartsOn(date, zone) {
			dayAppointments = append(dayAppointments, appt)
		}
	}

	schedule := &domain.DailySchedule{
		Location:            loc,
		Date:                date,
		Timezone:            zone.String(),
		TimezoneFallback:    fallback,
		SlotDurationMinutes: u.slotMinutes,
		Slots:               []time.Time{},
		Employees:           employees,
		Appointments:        dayAppointments,
		WindowAppointments:  windowAppointments,
	}

	// 6. Окно дня и слоты. Выходной день остается без слотов
	day := weekly[domain.ISOWeekday(date)]
	if day.IsClosed {
		schedule.IsClosed = true
		return schedule, nil
	}

	open, closeAt, degraded := dayWindow(day, date, zone)
	if degraded {
		u.logger.Warn("[get_daily_schedule] График локации %d на день %d поврежден, применено окно %s-%s",
			loc.ID, day.Weekday, domain.FallbackOpenTime, domain.FallbackCloseTime)
	}

	schedule.OpensAt = open
	schedule.ClosesAt = closeAt
	schedule.Slots = generateSlots(open, closeAt, u.slotMinutes)

	return schedule, nil
}
