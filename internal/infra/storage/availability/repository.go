package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// insertBatchSize ограничивает число строк в одном INSERT
const insertBatchSize = 200

// Repository репозиторий блоков доступности мойщиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// DeleteByWasherAndPeriod удаляет блоки мойщика с датами в [from, to] и возвращает их количество
func (r *Repository) DeleteByWasherAndPeriod(ctx context.Context, washerID uuid.UUID, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"washer_id": washerID.String()}).
		Where(squirrel.GtOrEq{"service_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"service_date": to.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByWasherAndPeriod - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByWasherAndPeriod - execute delete: %w", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByWasherAndPeriod - get rows affected: %w", ErrExecQuery, err)
	}

	return deleted, nil
}

// CreateBatch вставляет блоки пачками и возвращает количество вставленных строк
func (r *Repository) CreateBatch(ctx context.Context, blocks []domain.AvailabilityBlock) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var inserted int64
	for start := 0; start < len(blocks); start += insertBatchSize {
		end := min(start+insertBatchSize, len(blocks))

		builder := psqlbuilder.Insert(tableName).Columns(
			"washer_id",
			"service_date",
			"start_time",
			"end_time",
			"location",
			"status",
			"max_bookings",
			"current_bookings",
		)
		for _, b := range blocks[start:end] {
			builder = builder.Values(
				b.WasherID.String(),
				b.ServiceDate.Format(domain.DateFormat),
				b.StartTime,
				b.EndTime,
				b.Location,
				string(b.Status),
				b.MaxBookings,
				b.CurrentBookings,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("%w: CreateBatch - build insert query: %w", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("%w: CreateBatch - get rows affected: %w", ErrExecQuery, err)
		}
		inserted += n
	}

	return inserted, nil
}

// GetByID получает блок по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	blocks, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	if len(blocks) == 0 {
		return nil, ErrAvailabilityNotFound
	}

	return blocks[0], nil
}

// GetOpenByZipAndDate возвращает открытые блоки в ZIP на дату, упорядоченные по началу окна.
// Заполненные блоки тоже возвращаются, фильтрация по вместимости на стороне вызывающего.
func (r *Repository) GetOpenByZipAndDate(ctx context.Context, zip string, date time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"location":     zip,
			"service_date": date.Format(domain.DateFormat),
			"status":       string(domain.AvailabilityOpen),
		}).
		OrderBy("start_time ASC", "end_time ASC", "washer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByZipAndDate - build select query: %w", ErrBuildQuery, err)
	}

	blocks, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetOpenByZipAndDate: %w", err)
	}
	return blocks, nil
}

// GetOpenByZipAndPeriod возвращает открытые блоки в ZIP с датами в [from, to]
func (r *Repository) GetOpenByZipAndPeriod(ctx context.Context, zip string, from, to time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"location": zip,
			"status":   string(domain.AvailabilityOpen),
		}).
		Where(squirrel.GtOrEq{"service_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"service_date": to.Format(domain.DateFormat)}).
		OrderBy("service_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByZipAndPeriod - build select query: %w", ErrBuildQuery, err)
	}

	blocks, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetOpenByZipAndPeriod: %w", err)
	}
	return blocks, nil
}

// GetOpenBySlot возвращает открытые блоки с точным совпадением ZIP, даты и окна
func (r *Repository) GetOpenBySlot(ctx context.Context, zip string, date time.Time, start, end types.TimeString) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"location":     zip,
			"service_date": date.Format(domain.DateFormat),
			"start_time":   start.String(),
			"end_time":     end.String(),
			"status":       string(domain.AvailabilityOpen),
		}).
		OrderBy("washer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenBySlot - build select query: %w", ErrBuildQuery, err)
	}

	blocks, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetOpenBySlot: %w", err)
	}
	return blocks, nil
}

// List возвращает блоки по административному фильтру
func (r *Repository) List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("service_date ASC", "start_time ASC", "washer_id ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Location != nil {
		builder = builder.Where(squirrel.Eq{"location": *filter.Location})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"service_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"service_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	blocks, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return blocks, nil
}

// Reserve занимает одно место в блоке одним условным UPDATE.
// Место занимается только если блок открыт и не заполнен, поэтому
// параллельные бронирования не могут превысить max_bookings.
func (r *Repository) Reserve(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.AvailabilityOpen),
		}).
		Where("current_bookings < max_bookings").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Ничего не обновили: блок либо исчез, либо заполнен
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrAvailabilityNotFound) {
			return ErrAvailabilityNotFound
		}
		return fmt.Errorf("Reserve: %w", err)
	}

	return ErrCapacityFull
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.AvailabilityBlock, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []row
	if err := sqlx.StructScan(rows, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanRow, err)
	}

	return toDomainList(result), nil
}
