package washer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/psqlbuilder"
)

const tableName = "washers"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("washer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("washer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("washer.repository: failed to scan row")
)

// Repository репозиторий профилей мойщиков
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs возвращает профили найденных мойщиков. Неизвестные ID пропускаются.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error) {
	result := make(map[uuid.UUID]*domain.Washer, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	query, args, err := psqlbuilder.Select("id", "display_name", "phone").
		From(tableName).
		Where(squirrel.Eq{"id": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			w     domain.Washer
			name  sql.NullString
			phone sql.NullString
		)
		if err := rows.Scan(&w.ID, &name, &phone); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}
		w.DisplayName = name.String
		w.Phone = phone.String
		result[w.ID] = &w
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}
