package employee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Методы синхронизации назначений сотрудника.
// Каждое назначение (локации, услуги, расписание) заменяется целиком:
// delete + insert внутри транзакции вызывающего слоя.

// ReplaceLocations заменяет набор локаций сотрудника
func (r *Repository) ReplaceLocations(ctx context.Context, employeeID int64, locationIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("employee_locations").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceLocations - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceLocations - execute delete: %v", ErrExecQuery, err)
	}

	if len(locationIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("employee_locations").
		Columns("employee_id", "location_id")
	for _, locationID := range locationIDs {
		insertBuilder = insertBuilder.Values(employeeID, locationID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceLocations - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceLocations - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceServices заменяет назначения услуг сотрудника
func (r *Repository) ReplaceServices(ctx context.Context, employeeID int64, services []domain.EmployeeService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("employee_services").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(services) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("employee_services").
		Columns("employee_id", "service_id", "sort_order", "price")
	for _, svc := range services {
		insertBuilder = insertBuilder.Values(employeeID, svc.ServiceID, svc.SortOrder, svc.Price)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceSchedule заменяет недельное рабочее расписание сотрудника
// вместе с перерывами
func (r *Repository) ReplaceSchedule(ctx context.Context, employeeID int64, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"employee_schedule_breaks", "employee_schedule"} {
		deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"employee_id": employeeID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - build delete query for %s: %v", ErrBuildQuery, table, err)
		}
		if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: ReplaceSchedule - execute delete for %s: %v", ErrExecQuery, table, err)
		}
	}

	dayBuilder := psqlbuilder.Insert("employee_schedule").
		Columns("employee_id", "weekday", "is_working", "start_time", "end_time")

	breakRows := 0
	breakBuilder := psqlbuilder.Insert("employee_schedule_breaks").
		Columns("employee_id", "weekday", "break_start", "break_end")

	for day := domain.WeekdayMin; day <= domain.WeekdayMax; day++ {
		scheduleDay, ok := schedule[day]
		if !ok {
			scheduleDay = domain.ScheduleDay{Weekday: day, IsWorking: false}
		}

		var start, end interface{}
		if scheduleDay.Start != nil {
			start = scheduleDay.Start.String()
		}
		if scheduleDay.End != nil {
			end = scheduleDay.End.String()
		}

		dayBuilder = dayBuilder.Values(employeeID, day, scheduleDay.IsWorking, start, end)

		for _, brk := range scheduleDay.Breaks {
			breakBuilder = breakBuilder.Values(employeeID, day, brk.Start.String(), brk.End.String())
			breakRows++
		}
	}

	dayQuery, dayArgs, err := dayBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, dayQuery, dayArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute insert: %v", ErrExecQuery, err)
	}

	if breakRows == 0 {
		return nil
	}

	breakQuery, breakArgs, err := breakBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build breaks insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, breakQuery, breakArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute breaks insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetLocations получает набор локаций сотрудника
func (r *Repository) GetLocations(ctx context.Context, employeeID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("location_id").
		From("employee_locations").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("location_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locationIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetLocations - scan row: %v", ErrScanRow, err)
		}
		locationIDs = append(locationIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLocations - rows error: %v", ErrScanRow, err)
	}

	return locationIDs, nil
}

// GetServices получает назначения услуг сотрудника в порядке сортировки
func (r *Repository) GetServices(ctx context.Context, employeeID int64) ([]domain.EmployeeService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id", "sort_order", "price").
		From("employee_services").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("sort_order ASC, service_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.EmployeeService, 0)
	for rows.Next() {
		var svc domain.EmployeeService
		var price sql.NullFloat64

		if err := rows.Scan(&svc.ServiceID, &svc.SortOrder, &price); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}
		if price.Valid {
			svc.Price = &price.Float64
		}

		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetSchedule получает недельное расписание сотрудника с перерывами
// Дни без записей возвращаются как нерабочие
func (r *Repository) GetSchedule(ctx context.Context, employeeID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule := make(domain.WeeklySchedule, domain.WeekdayMax)
	for day := domain.WeekdayMin; day <= domain.WeekdayMax; day++ {
		schedule[day] = domain.ScheduleDay{Weekday: day, IsWorking: false}
	}

	dayQuery, dayArgs, err := psqlbuilder.Select("weekday", "is_working", "start_time", "end_time").
		From("employee_schedule").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, dayQuery, dayArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var day domain.ScheduleDay
		var start, end sql.NullString

		if err := rows.Scan(&day.Weekday, &day.IsWorking, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan row: %v", ErrScanRow, err)
		}

		if start.Valid {
			ts := timeStringFromColumn(start.String)
			day.Start = &ts
		}
		if end.Valid {
			ts := timeStringFromColumn(end.String)
			day.End = &ts
		}

		schedule[day.Weekday] = day
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - rows error: %v", ErrScanRow, err)
	}

	breakQuery, breakArgs, err := psqlbuilder.Select("weekday", "break_start", "break_end").
		From("employee_schedule_breaks").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("weekday ASC, break_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build breaks query: %v", ErrBuildQuery, err)
	}

	breakRows, err := executor.QueryContext(ctx, breakQuery, breakArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute breaks query: %v", ErrExecQuery, err)
	}
	defer breakRows.Close()

	for breakRows.Next() {
		var weekday int
		var start, end string

		if err := breakRows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan break row: %v", ErrScanRow, err)
		}

		day := schedule[weekday]
		day.Breaks = append(day.Breaks, domain.ScheduleBreak{
			Start: timeStringFromColumn(start),
			End:   timeStringFromColumn(end),
		})
		schedule[weekday] = day
	}

	if err := breakRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - break rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// timeStringFromColumn обрезает значение TIME колонки ("HH:MM:SS") до HH:MM
func timeStringFromColumn(s string) types.TimeString {
	if len(s) > 5 {
		return types.TimeString(s[:5])
	}
	return types.TimeString(s)
}
