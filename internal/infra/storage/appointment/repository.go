package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"service_id",
	"provider_id",
	"customer_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"scheduled_start",
	"scheduled_end",
	"status",
	"payment_status",
	"notes",
	"internal_note",
	"notify_customer",
	"recurring",
	"is_deleted",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями (appointments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"service_id",
			"provider_id",
			"customer_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"scheduled_start",
			"scheduled_end",
			"status",
			"payment_status",
			"notes",
			"internal_note",
			"notify_customer",
			"recurring",
		).
		Values(
			appt.ServiceID,
			appt.ProviderID,
			appt.CustomerID,
			appt.CustomerName,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.ScheduledStart,
			appt.ScheduledEnd,
			appt.Status,
			appt.PaymentStatus,
			appt.Notes,
			appt.InternalNote,
			appt.NotifyCustomer,
			appt.Recurring,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID (включая мягко удаленные)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// Update обновляет запись
func (r *Repository) Update(ctx context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("service_id", appt.ServiceID).
		Set("provider_id", appt.ProviderID).
		Set("customer_id", appt.CustomerID).
		Set("customer_name", appt.CustomerName).
		Set("customer_email", appt.CustomerEmail).
		Set("customer_phone", appt.CustomerPhone).
		Set("scheduled_start", appt.ScheduledStart).
		Set("scheduled_end", appt.ScheduledEnd).
		Set("status", appt.Status).
		Set("payment_status", appt.PaymentStatus).
		Set("notes", appt.Notes).
		Set("internal_note", appt.InternalNote).
		Set("notify_customer", appt.NotifyCustomer).
		Set("recurring", appt.Recurring).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appt.ID = id
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// SoftDelete помечает запись удаленной (физическое удаление не используется)
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true)
}

// Restore восстанавливает мягко удаленную запись
func (r *Repository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false)
}

func (r *Repository) setDeleted(ctx context.Context, id int64, deleted bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("is_deleted", deleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: setDeleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: setDeleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: setDeleted - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// List получает страницу записей с гибкой фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	selectBuilder := applyFilter(psqlbuilder.Select(appointmentColumns...).From("appointments"), filter).
		OrderBy("scheduled_start DESC, id DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Count возвращает общее количество записей, подходящих под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.AppointmentFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("appointments"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// GetByProvidersInRange получает записи набора сотрудников в диапазоне
// [from, to] по времени начала. Используется календарным агрегатором
func (r *Repository) GetByProvidersInRange(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Expr("provider_id = ANY(?)", pq.Array(providerIDs))).
		Where(squirrel.GtOrEq{"scheduled_start": from}).
		Where(squirrel.LtOrEq{"scheduled_start": to}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("scheduled_start ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvidersInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvidersInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// applyFilter добавляет условия фильтра в запрос
func applyFilter(builder squirrel.SelectBuilder, filter domain.AppointmentFilter) squirrel.SelectBuilder {
	if filter.ProviderID != nil {
		builder = builder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.ServiceID != nil {
		builder = builder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"scheduled_start": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"scheduled_start": *filter.To})
	}

	switch {
	case filter.OnlyDeleted:
		builder = builder.Where(squirrel.Eq{"is_deleted": true})
	case !filter.IncludeDeleted:
		builder = builder.Where(squirrel.Eq{"is_deleted": false})
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var customerID sql.NullInt64
	var customerEmail, customerPhone, paymentStatus, notes, internalNote sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ServiceID,
		&appt.ProviderID,
		&customerID,
		&appt.CustomerName,
		&customerEmail,
		&customerPhone,
		&appt.ScheduledStart,
		&appt.ScheduledEnd,
		&appt.Status,
		&paymentStatus,
		&notes,
		&internalNote,
		&appt.NotifyCustomer,
		&appt.Recurring,
		&appt.IsDeleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		appt.CustomerID = &customerID.Int64
	}
	if customerEmail.Valid {
		appt.CustomerEmail = &customerEmail.String
	}
	if customerPhone.Valid {
		appt.CustomerPhone = &customerPhone.String
	}
	if paymentStatus.Valid {
		status := domain.PaymentStatus(paymentStatus.String)
		appt.PaymentStatus = &status
	}
	if notes.Valid {
		appt.Notes = &notes.String
	}
	if internalNote.Valid {
		appt.InternalNote = &internalNote.String
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
