package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/psqlbuilder"
)

// Repository репозиторий недельного шаблона и исключений расписания мойщика
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekByWasher возвращает сохраненные строки недельного шаблона.
// Отсутствие строки для дня недели означает выходной.
func (r *Repository) GetWeekByWasher(ctx context.Context, washerID uuid.UUID) ([]domain.WeeklyTemplateRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weekColumns...).
		From(weekTable).
		Where(squirrel.Eq{"washer_id": washerID.String()}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByWasher - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekByWasher - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var scanned []weekRow
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("%w: GetWeekByWasher - scan rows: %w", ErrScanRow, err)
	}

	result := make([]domain.WeeklyTemplateRow, 0, len(scanned))
	for i := range scanned {
		result = append(result, scanned[i].toDomain())
	}
	return result, nil
}

// UpsertWeekRows вставляет или обновляет строки шаблона по ключу (washer_id, weekday)
func (r *Repository) UpsertWeekRows(ctx context.Context, rows []domain.WeeklyTemplateRow) error {
	if len(rows) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(weekTable).
		Columns("washer_id", "weekday", "is_working", "start_time", "end_time", "zip", "updated_at")
	for _, row := range rows {
		builder = builder.Values(
			row.WasherID.String(),
			int(row.Weekday),
			row.IsWorking,
			nullableTime(row.StartTime),
			nullableTime(row.EndTime),
			row.Zip,
			squirrel.Expr("NOW()"),
		)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (washer_id, weekday) DO UPDATE SET
			is_working = EXCLUDED.is_working,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			zip = EXCLUDED.zip,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertWeekRows - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertWeekRows - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteWeekdays удаляет строки шаблона для перечисленных дней недели
func (r *Repository) DeleteWeekdays(ctx context.Context, washerID uuid.UUID, weekdays []time.Weekday) error {
	if len(weekdays) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make([]int64, 0, len(weekdays))
	for _, wd := range weekdays {
		days = append(days, int64(wd))
	}

	query, args, err := psqlbuilder.Delete(weekTable).
		Where(squirrel.Eq{"washer_id": washerID.String()}).
		Where("weekday = ANY(?)", pq.Array(days)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteWeekdays - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteWeekdays - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

// GetExceptionsByPeriod возвращает исключения мойщика с датами в [from, to]
func (r *Repository) GetExceptionsByPeriod(ctx context.Context, washerID uuid.UUID, from, to time.Time) ([]domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From(exceptionsTable).
		Where(squirrel.Eq{"washer_id": washerID.String()}).
		Where(squirrel.GtOrEq{"service_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"service_date": to.Format(domain.DateFormat)}).
		OrderBy("service_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByPeriod - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var scanned []exceptionRow
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByPeriod - scan rows: %w", ErrScanRow, err)
	}

	result := make([]domain.ScheduleException, 0, len(scanned))
	for i := range scanned {
		result = append(result, scanned[i].toDomain())
	}
	return result, nil
}

// UpsertExceptions вставляет или обновляет исключения по ключу (washer_id, service_date).
// Даты в пачке должны быть уникальны.
func (r *Repository) UpsertExceptions(ctx context.Context, exceptions []domain.ScheduleException) error {
	if len(exceptions) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(exceptionsTable).
		Columns("washer_id", "service_date", "is_day_off", "start_time", "end_time", "zip", "approval_status", "updated_at")
	for _, ex := range exceptions {
		builder = builder.Values(
			ex.WasherID.String(),
			ex.ServiceDate.Format(domain.DateFormat),
			ex.IsDayOff,
			nullableTime(ex.StartTime),
			nullableTime(ex.EndTime),
			nullableString(ex.Zip),
			string(ex.ApprovalStatus),
			squirrel.Expr("NOW()"),
		)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (washer_id, service_date) DO UPDATE SET
			is_day_off = EXCLUDED.is_day_off,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			zip = EXCLUDED.zip,
			approval_status = EXCLUDED.approval_status,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertExceptions - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertExceptions - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}
