package wash

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/psqlbuilder"
)

// Repository репозиторий моек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория моек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мойку и заполняет ID и created_at
func (r *Repository) Create(ctx context.Context, wash *domain.Wash) (*domain.Wash, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"sharetribe_user_id",
			"subscription_id",
			"washer_id",
			"scheduled_start",
			"scheduled_end",
			"location_id",
			"vehicle_count",
			"status",
			"special_instructions",
			"late_cancellation_fee_applied",
		).
		Values(
			wash.SharetribeUserID,
			wash.SubscriptionID,
			nullableWasherID(wash.WasherID),
			wash.ScheduledStart,
			wash.ScheduledEnd,
			wash.LocationID,
			wash.VehicleCount,
			string(wash.Status),
			wash.SpecialInstructions,
			wash.LateCancellationFeeApplied,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wash.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	wash.CreatedAt = createdAt.Time

	return wash, nil
}

// CountCompletedByWashers считает завершенные мойки каждого мойщика в ZIP
// с началом в [from, to). Мойщики без завершенных моек в результат не попадают.
func (r *Repository) CountCompletedByWashers(
	ctx context.Context,
	zip string,
	from, to time.Time,
	washerIDs []uuid.UUID,
) (map[uuid.UUID]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("washer_id", "COUNT(*) AS completed").
		From(tableName).
		Where(squirrel.Eq{
			"location_id": zip,
			"status":      string(domain.WashCompleted),
		}).
		Where(squirrel.GtOrEq{"scheduled_start": from}).
		Where(squirrel.Lt{"scheduled_start": to}).
		Where(squirrel.NotEq{"washer_id": nil}).
		GroupBy("washer_id")

	if len(washerIDs) > 0 {
		ids := make([]string, 0, len(washerIDs))
		for _, id := range washerIDs {
			ids = append(ids, id.String())
		}
		builder = builder.Where(squirrel.Eq{"washer_id": ids})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountCompletedByWashers - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountCompletedByWashers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			washerID  uuid.UUID
			completed int
		)
		if err := rows.Scan(&washerID, &completed); err != nil {
			return nil, fmt.Errorf("%w: CountCompletedByWashers - scan row: %w", ErrScanRow, err)
		}
		counts[washerID] = completed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountCompletedByWashers - rows iteration: %w", ErrScanRow, err)
	}

	return counts, nil
}

// GetByUserID возвращает мойки пользователя по возрастанию времени начала
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Wash, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"sharetribe_user_id": userID}).
		OrderBy("scheduled_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	washes, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetByUserID: %w", err)
	}
	return washes, nil
}

// List возвращает последние limit моек, новые первыми
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.Wash, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("scheduled_start DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	washes, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return washes, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Wash, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var scanned []row
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanRow, err)
	}

	washes := make([]*domain.Wash, 0, len(scanned))
	for i := range scanned {
		washes = append(washes, scanned[i].toDomain())
	}
	return washes, nil
}
