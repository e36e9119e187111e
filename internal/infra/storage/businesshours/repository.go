package businesshours

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

// Repository репозиторий для работы с недельным расписанием локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает все сохраненные записи расписания локации
// Дни без записей отсутствуют в результате - дефолты проставляет сервисный слой
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"location_id",
		"weekday",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("business_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHour, 0, domain.WeekdayMax)
	for rows.Next() {
		var hour domain.BusinessHour
		var openTime, closeTime sql.NullString

		err := rows.Scan(
			&hour.LocationID,
			&hour.Weekday,
			&openTime,
			&closeTime,
			&hour.IsClosed,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByLocation - scan row: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			ts := types.TimeString(openTime.String)
			if len(openTime.String) > 5 {
				ts = types.TimeString(openTime.String[:5])
			}
			hour.OpenTime = &ts
		}
		if closeTime.Valid {
			ts := types.TimeString(closeTime.String)
			if len(closeTime.String) > 5 {
				ts = types.TimeString(closeTime.String[:5])
			}
			hour.CloseTime = &ts
		}

		hours = append(hours, &hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceForLocation заменяет недельное расписание локации целиком.
// Сохраняются только переданные дни - отсутствующие дни сервисный слой
// трактует как выходные. Вызывается внутри транзакции (txmanager кладет
// её в контекст), чтобы удаление и вставка применялись атомарно
func (r *Repository) ReplaceForLocation(ctx context.Context, locationID int64, hours []*domain.BusinessHour) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("location_id", "weekday", "open_time", "close_time", "is_closed")

	for _, hour := range hours {
		var openTime, closeTime interface{}
		if hour.OpenTime != nil {
			openTime = hour.OpenTime.String()
		}
		if hour.CloseTime != nil {
			closeTime = hour.CloseTime.String()
		}

		insertBuilder = insertBuilder.Values(locationID, hour.Weekday, openTime, closeTime, hour.IsClosed)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
