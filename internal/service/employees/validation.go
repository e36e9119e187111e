package employees

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func validateVisibility(visibility string) error {
	if !domain.IsValidVisibility(domain.EmployeeVisibility(visibility)) {
		return fmt.Errorf("%w: %q", ErrInvalidVisibility, visibility)
	}
	return nil
}

// validateSchedule проверяет недельный график и собирает доменное представление.
// Дни, отсутствующие во вводе, считаются нерабочими
func validateSchedule(days []models.ScheduleDayIn) (domain.WeeklySchedule, error) {
	schedule := make(domain.WeeklySchedule, domain.WeekdayMax)
	for weekday := domain.WeekdayMin; weekday <= domain.WeekdayMax; weekday++ {
		schedule[weekday] = domain.ScheduleDay{Weekday: weekday}
	}

	for _, day := range days {
		validated, err := validateScheduleDay(day)
		if err != nil {
			return nil, err
		}
		schedule[validated.Weekday] = *validated
	}

	return schedule, nil
}

func validateScheduleDay(day models.ScheduleDayIn) (*domain.ScheduleDay, error) {
	if day.Weekday < domain.WeekdayMin || day.Weekday > domain.WeekdayMax {
		return nil, fmt.Errorf("%w: weekday=%d", ErrInvalidWeekday, day.Weekday)
	}

	if !day.IsWorking {
		// Выходной день не может нести интервалы
		if day.Start != nil || day.End != nil || len(day.Breaks) > 0 {
			return nil, fmt.Errorf("%w: weekday=%d is not working but has time values", ErrInvalidSchedule, day.Weekday)
		}
		return &domain.ScheduleDay{Weekday: day.Weekday}, nil
	}

	if day.Start == nil || day.End == nil {
		return nil, fmt.Errorf("%w: weekday=%d working day requires start and end", ErrInvalidSchedule, day.Weekday)
	}

	start, err := types.NewTimeStringFromString(*day.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d start=%q", ErrInvalidSchedule, day.Weekday, *day.Start)
	}
	end, err := types.NewTimeStringFromString(*day.End)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d end=%q", ErrInvalidSchedule, day.Weekday, *day.End)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: weekday=%d %s >= %s", ErrInvalidSchedule, day.Weekday, start, end)
	}

	breaks := make([]domain.ScheduleBreak, 0, len(day.Breaks))
	for _, brk := range day.Breaks {
		validated, err := validateScheduleBreak(day.Weekday, brk, start, end)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, *validated)
	}

	return &domain.ScheduleDay{
		Weekday:   day.Weekday,
		IsWorking: true,
		Start:     &start,
		End:       &end,
		Breaks:    breaks,
	}, nil
}

// validateScheduleBreak проверяет, что перерыв лежит внутри рабочего интервала.
// Границы включительные: перерыв может начинаться в start и заканчиваться в end
func validateScheduleBreak(weekday int, brk models.ScheduleBreakIn, start, end types.TimeString) (*domain.ScheduleBreak, error) {
	brkStart, err := types.NewTimeStringFromString(brk.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d break start=%q", ErrInvalidScheduleBreak, weekday, brk.Start)
	}
	brkEnd, err := types.NewTimeStringFromString(brk.End)
	if err != nil {
		return nil, fmt.Errorf("%w: weekday=%d break end=%q", ErrInvalidScheduleBreak, weekday, brk.End)
	}

	if !brkStart.IsBefore(brkEnd) {
		return nil, fmt.Errorf("%w: weekday=%d %s >= %s", ErrInvalidScheduleBreak, weekday, brkStart, brkEnd)
	}
	if brkStart.IsBefore(start) || brkEnd.IsAfter(end) {
		return nil, fmt.Errorf("%w: weekday=%d break %s-%s outside %s-%s", ErrInvalidScheduleBreak, weekday, brkStart, brkEnd, start, end)
	}

	return &domain.ScheduleBreak{Start: brkStart, End: brkEnd}, nil
}

func toDomainServices(in []models.EmployeeServiceIn) []domain.EmployeeService {
	services := make([]domain.EmployeeService, 0, len(in))
	for _, svc := range in {
		services = append(services, domain.EmployeeService{
			ServiceID: svc.ServiceID,
			SortOrder: svc.SortOrder,
			Price:     svc.Price,
		})
	}
	return services
}
